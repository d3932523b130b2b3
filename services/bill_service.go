package services

import (
	"errors"

	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// ErrBillNotFound 账单不存在
var ErrBillNotFound = errors.New("The bill with the given ID was not found.")

// InterfaceBillService defines the billing service interface
type InterfaceBillService interface {
	GetBillsByTenant(tenantID uint) ([]BillRow, error)
	GetBillsByUser(userID uint) ([]BillRow, error)
	GetBillByID(id uint) (*BillRow, error)
	CreateBill(tenantID uint, date string, particularID uint, amountDue float64) (*models.Bill, error)
	UpdateBill(id uint, date string, particularID uint, amountDue float64) error
}

// BillService 提供账单相关的服务
type BillService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBillService 创建一个新的账单服务
func NewBillService(db *gorm.DB, cfg *config.Config) InterfaceBillService {
	return &BillService{
		DB:     db,
		Config: cfg,
	}
}

// BillRow 表示账单查询结果，余额为应付金额减去已付合计
type BillRow struct {
	ID         uint    `json:"id"`
	TenantID   uint    `json:"tenant_id"`
	Date       string  `json:"date"`
	Particular string  `json:"particular"`
	AmountDue  float64 `json:"amount_due"`
	Balance    float64 `json:"balance"`
}

const billSelect = "bills.id, bills.tenant_id, bills.date, particulars.description as particular, bills.amount_due, bills.amount_due - COALESCE(SUM(payments.amount_paid), 0) as balance"

const billGroup = "bills.id, bills.tenant_id, bills.date, particulars.description, bills.amount_due"

// billQuery 组装账单连接查询。左连接付款表以保证无付款记录的账单
// 仍然返回，余额等于应付金额。
func (s *BillService) billQuery() *gorm.DB {
	return s.DB.Table("bills").
		Select(billSelect).
		Joins("join particulars on particulars.id = bills.particular_id").
		Joins("left join payments on payments.bill_id = bills.id").
		Group(billGroup)
}

// 1 GetBillsByTenant 获取指定入住记录的所有账单
func (s *BillService) GetBillsByTenant(tenantID uint) ([]BillRow, error) {
	var rows []BillRow
	if err := s.billQuery().Where("bills.tenant_id = ?", tenantID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// 2 GetBillsByUser 获取指定用户名下的所有账单（经入住记录关联）
func (s *BillService) GetBillsByUser(userID uint) ([]BillRow, error) {
	var rows []BillRow
	err := s.billQuery().
		Joins("join tenants on tenants.id = bills.tenant_id").
		Where("tenants.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 3 GetBillByID 根据ID获取单条账单
func (s *BillService) GetBillByID(id uint) (*BillRow, error) {
	var row BillRow
	result := s.billQuery().Where("bills.id = ?", id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrBillNotFound
	}
	return &row, nil
}

// 4 CreateBill 创建账单
func (s *BillService) CreateBill(tenantID uint, date string, particularID uint, amountDue float64) (*models.Bill, error) {
	bill := &models.Bill{
		TenantID:     tenantID,
		Date:         date,
		ParticularID: particularID,
		AmountDue:    amountDue,
	}
	if err := s.DB.Create(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

// 5 UpdateBill 更新账单
func (s *BillService) UpdateBill(id uint, date string, particularID uint, amountDue float64) error {
	result := s.DB.Model(&models.Bill{}).Where("id = ?", id).Updates(map[string]interface{}{
		"date":          date,
		"particular_id": particularID,
		"amount_due":    amountDue,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBillNotFound
	}
	return nil
}
