package services

import (
	"errors"

	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// ErrTenantNotFound 入住记录不存在
var ErrTenantNotFound = errors.New("The tenant with the given ID was not found.")

// InterfaceTenantService defines the tenancy service interface
type InterfaceTenantService interface {
	GetAllTenants() ([]TenantRow, error)
	GetTenantByID(id uint) (*TenantRow, error)
	GetTenantByUser(userID uint) (*TenantRow, error)
	CreateTenant(unitID, userID uint) (*models.Tenant, error)
	UpdateTenant(id, unitID, userID uint) error
	DeleteTenant(id uint) error
}

// TenantService 提供入住记录相关的服务
type TenantService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTenantService 创建一个新的入住记录服务
func NewTenantService(db *gorm.DB, cfg *config.Config) InterfaceTenantService {
	return &TenantService{
		DB:     db,
		Config: cfg,
	}
}

// TenantRow 表示入住记录列表查询结果（连接用户、单元与职业信息）
type TenantRow struct {
	ID         uint    `json:"id"`
	UnitID     uint    `json:"unit_id"`
	UserID     uint    `json:"user_id"`
	LastName   string  `json:"last_name"`
	FirstName  string  `json:"first_name"`
	Email      string  `json:"email"`
	Contact    *string `json:"contact"`
	UnitDesc   string  `json:"desc"`
	Photo      *string `json:"photo"`
	Address    *string `json:"address"`
	BirthDate  *string `json:"birth_date"`
	Occupation *string `json:"occupation"`
}

const tenantSelect = "tenants.id, tenants.unit_id, tenants.user_id, users.last_name, users.first_name, users.email, users.contact, units.description as unit_desc, users.photo, users.address, users.birth_date, occupations.description as occupation"

// tenantQuery 组装入住记录连接查询
func (s *TenantService) tenantQuery() *gorm.DB {
	return s.DB.Table("tenants").
		Select(tenantSelect).
		Joins("join units on units.id = tenants.unit_id").
		Joins("join users on users.id = tenants.user_id").
		Joins("left join occupations on occupations.id = users.occupation")
}

// 1 GetAllTenants 获取所有入住记录
func (s *TenantService) GetAllTenants() ([]TenantRow, error) {
	var rows []TenantRow
	if err := s.tenantQuery().Scan(&rows).Error; err != nil {
		return nil, err
	}

	// 出生日期按旧接口格式化为 "January 02, 2006"
	for i := range rows {
		rows[i].BirthDate = formatLongDate(rows[i].BirthDate)
	}
	return rows, nil
}

// 2 GetTenantByID 根据ID获取入住记录
func (s *TenantService) GetTenantByID(id uint) (*TenantRow, error) {
	var row TenantRow
	result := s.tenantQuery().Where("tenants.id = ?", id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTenantNotFound
	}
	row.BirthDate = formatLongDate(row.BirthDate)
	return &row, nil
}

// 3 GetTenantByUser 根据用户ID获取其入住记录
func (s *TenantService) GetTenantByUser(userID uint) (*TenantRow, error) {
	var row TenantRow
	result := s.tenantQuery().Where("tenants.user_id = ?", userID).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTenantNotFound
	}
	row.BirthDate = formatLongDate(row.BirthDate)
	return &row, nil
}

// 4 CreateTenant 创建入住记录
func (s *TenantService) CreateTenant(unitID, userID uint) (*models.Tenant, error) {
	tenant := &models.Tenant{
		UnitID: unitID,
		UserID: userID,
	}
	if err := s.DB.Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

// 5 UpdateTenant 更新入住记录（换租或换单元）
func (s *TenantService) UpdateTenant(id, unitID, userID uint) error {
	result := s.DB.Model(&models.Tenant{}).Where("id = ?", id).Updates(map[string]interface{}{
		"unit_id": unitID,
		"user_id": userID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTenantNotFound
	}
	return nil
}

// 6 DeleteTenant 删除入住记录（退租）
func (s *TenantService) DeleteTenant(id uint) error {
	result := s.DB.Delete(&models.Tenant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTenantNotFound
	}
	return nil
}
