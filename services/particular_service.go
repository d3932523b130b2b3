package services

import (
	"errors"

	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// ErrParticularNotFound 收费项目不存在
var ErrParticularNotFound = errors.New("The particular with the given ID was not found.")

// InterfaceParticularService defines the billing particulars catalog interface
type InterfaceParticularService interface {
	GetAllParticulars() ([]models.Particular, error)
	GetParticularByID(id uint) (*models.Particular, error)
	CreateParticular(description string) (*models.Particular, error)
	UpdateParticular(id uint, description string) error
	DeleteParticular(id uint) error
}

// ParticularService 提供收费项目目录服务
type ParticularService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewParticularService 创建一个新的收费项目服务
func NewParticularService(db *gorm.DB, cfg *config.Config) InterfaceParticularService {
	return &ParticularService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllParticulars 获取所有收费项目
func (s *ParticularService) GetAllParticulars() ([]models.Particular, error) {
	var particulars []models.Particular
	if err := s.DB.Find(&particulars).Error; err != nil {
		return nil, err
	}
	return particulars, nil
}

// 2 GetParticularByID 根据ID获取收费项目
func (s *ParticularService) GetParticularByID(id uint) (*models.Particular, error) {
	var particular models.Particular
	if err := s.DB.First(&particular, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticularNotFound
		}
		return nil, err
	}
	return &particular, nil
}

// 3 CreateParticular 创建收费项目
func (s *ParticularService) CreateParticular(description string) (*models.Particular, error) {
	particular := &models.Particular{Description: description}
	if err := s.DB.Create(particular).Error; err != nil {
		return nil, err
	}
	return particular, nil
}

// 4 UpdateParticular 更新收费项目
func (s *ParticularService) UpdateParticular(id uint, description string) error {
	result := s.DB.Model(&models.Particular{}).Where("id = ?", id).Update("description", description)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticularNotFound
	}
	return nil
}

// 5 DeleteParticular 删除收费项目
func (s *ParticularService) DeleteParticular(id uint) error {
	result := s.DB.Delete(&models.Particular{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticularNotFound
	}
	return nil
}
