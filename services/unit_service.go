package services

import (
	"errors"

	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// ErrUnitNotFound 单元不存在
var ErrUnitNotFound = errors.New("The unit with the given ID was not found.")

// InterfaceUnitService defines the unit service interface
type InterfaceUnitService interface {
	GetAllUnits() ([]models.Unit, error)
	GetUnitByID(id uint) (*models.Unit, error)
	GetAvailableUnits(userID uint) ([]models.Unit, error)
	CreateUnit(description, image string) (*models.Unit, error)
	UpdateUnit(id uint, description, image string) error
	DeleteUnit(id uint) error
}

// UnitService 提供出租单元相关的服务
type UnitService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUnitService 创建一个新的单元服务
func NewUnitService(db *gorm.DB, cfg *config.Config) InterfaceUnitService {
	return &UnitService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllUnits 获取所有单元
func (s *UnitService) GetAllUnits() ([]models.Unit, error) {
	var units []models.Unit
	if err := s.DB.Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// 2 GetUnitByID 根据ID获取单元
func (s *UnitService) GetUnitByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// 3 GetAvailableUnits 获取对指定用户可预订的单元。
// 过滤规则与旧系统一致：排除已有入住记录的单元，以及该用户自己
// 已有待审批预订的单元；其他用户的待审批预订不会隐藏单元。
func (s *UnitService) GetAvailableUnits(userID uint) ([]models.Unit, error) {
	var units []models.Unit
	err := s.DB.
		Where("id NOT IN (SELECT tenants.unit_id FROM tenants)").
		Where("id NOT IN (SELECT reservations.unit_id FROM reservations WHERE reservations.user_id = ? AND reservations.status = ?)", userID, models.ReservationPending).
		Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

// 4 CreateUnit 创建新单元
func (s *UnitService) CreateUnit(description, image string) (*models.Unit, error) {
	unit := &models.Unit{
		Description: description,
		Image:       image,
	}
	if err := s.DB.Create(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

// 5 UpdateUnit 更新单元信息
func (s *UnitService) UpdateUnit(id uint, description, image string) error {
	result := s.DB.Model(&models.Unit{}).Where("id = ?", id).Updates(map[string]interface{}{
		"description": description,
		"image":       image,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUnitNotFound
	}
	return nil
}

// 6 DeleteUnit 删除单元。被引用的单元由数据库外键约束兜底，
// 约束冲突作为存储层错误向上抛出。
func (s *UnitService) DeleteUnit(id uint) error {
	result := s.DB.Delete(&models.Unit{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUnitNotFound
	}
	return nil
}
