package services

import (
	"errors"

	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// ErrOccupationNotFound 职业不存在
var ErrOccupationNotFound = errors.New("The occupation with the given ID was not found.")

// InterfaceOccupationService defines the occupation catalog interface
type InterfaceOccupationService interface {
	GetAllOccupations() ([]models.Occupation, error)
	GetOccupationByID(id uint) (*models.Occupation, error)
	CreateOccupation(description string) (*models.Occupation, error)
	UpdateOccupation(id uint, description string) error
	DeleteOccupation(id uint) error
}

// OccupationService 提供职业目录服务
type OccupationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOccupationService 创建一个新的职业服务
func NewOccupationService(db *gorm.DB, cfg *config.Config) InterfaceOccupationService {
	return &OccupationService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllOccupations 获取所有职业
func (s *OccupationService) GetAllOccupations() ([]models.Occupation, error) {
	var occupations []models.Occupation
	if err := s.DB.Find(&occupations).Error; err != nil {
		return nil, err
	}
	return occupations, nil
}

// 2 GetOccupationByID 根据ID获取职业
func (s *OccupationService) GetOccupationByID(id uint) (*models.Occupation, error) {
	var occupation models.Occupation
	if err := s.DB.First(&occupation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOccupationNotFound
		}
		return nil, err
	}
	return &occupation, nil
}

// 3 CreateOccupation 创建职业
func (s *OccupationService) CreateOccupation(description string) (*models.Occupation, error) {
	occupation := &models.Occupation{Description: description}
	if err := s.DB.Create(occupation).Error; err != nil {
		return nil, err
	}
	return occupation, nil
}

// 4 UpdateOccupation 更新职业
func (s *OccupationService) UpdateOccupation(id uint, description string) error {
	result := s.DB.Model(&models.Occupation{}).Where("id = ?", id).Update("description", description)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOccupationNotFound
	}
	return nil
}

// 5 DeleteOccupation 删除职业
func (s *OccupationService) DeleteOccupation(id uint) error {
	result := s.DB.Delete(&models.Occupation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOccupationNotFound
	}
	return nil
}
