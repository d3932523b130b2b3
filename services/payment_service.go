package services

import (
	"errors"

	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// ErrPaymentNotFound 付款记录不存在
var ErrPaymentNotFound = errors.New("The payment with the given ID was not found.")

// InterfacePaymentService defines the payment service interface
type InterfacePaymentService interface {
	GetPaymentsByBill(billID uint) ([]models.Payment, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	CreatePayment(billID uint, amountPaid float64, date, particulars string) (*models.Payment, error)
}

// PaymentService 提供付款相关的服务
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService 创建一个新的付款服务
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetPaymentsByBill 获取指定账单的所有付款记录
func (s *PaymentService) GetPaymentsByBill(billID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Where("bill_id = ?", billID).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// 2 GetPaymentByID 根据ID获取付款记录
func (s *PaymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// 3 CreatePayment 创建付款记录。不校验金额是否超过余额，
// 多付产生负余额，由账单查询如实反映。
func (s *PaymentService) CreatePayment(billID uint, amountPaid float64, date, particulars string) (*models.Payment, error) {
	// 账单必须存在
	var count int64
	if err := s.DB.Model(&models.Bill{}).Where("id = ?", billID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrBillNotFound
	}

	payment := &models.Payment{
		BillID:      billID,
		AmountPaid:  amountPaid,
		Date:        date,
		Particulars: particulars,
	}
	if err := s.DB.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}
