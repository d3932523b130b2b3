package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
	"tulayan-http-service/utils"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("The user with the given ID was not found.")
	// ErrEmailAlreadyExist 邮箱已被注册
	ErrEmailAlreadyExist = errors.New("Email is already exists!")
	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = errors.New("Invalid email or password!")
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	Register(firstName, lastName, email, contact, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetAllUsers() ([]UserRow, error)
	GetUnreservedUsers() ([]UserBrief, error)
	UpdatePassword(id uint, password string) error
	CheckUserInfo(userID uint) (*UserInfoStatus, error)
	UpdateUserInfo(userID uint, address, birthDate string, occupation uint, photo string) error
}

// UserService 提供用户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// UserRow 表示用户列表查询结果（职业为左连接出来的描述文本）
type UserRow struct {
	ID         uint    `json:"id"`
	LastName   string  `json:"last_name"`
	FirstName  string  `json:"first_name"`
	Email      string  `json:"email"`
	Contact    *string `json:"contact"`
	Address    *string `json:"address"`
	Photo      *string `json:"photo"`
	BirthDate  *string `json:"birth_date"`
	Occupation *string `json:"occupation"`
}

// UserBrief 表示未入住用户的简要信息
type UserBrief struct {
	ID        uint   `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
}

// UserInfoStatus 表示用户资料完整度检查结果
type UserInfoStatus struct {
	IsUserinfoIncomplete int64  `json:"is_userinfo_incomplete"`
	FirstName            string `json:"first_name"`
}

// 1 Register 注册新用户（默认角色为租户）
func (s *UserService) Register(firstName, lastName, email, contact, password string) (*models.User, error) {
	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailAlreadyExist
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password, // BeforeCreate 钩子中进行哈希
		RoleID:    models.RoleTenant,
	}
	if contact != "" {
		user.Contact = &contact
	}

	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// 2 Authenticate 校验邮箱和密码，成功返回用户
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// 3 GetAllUsers 获取所有用户（左连接职业描述）
func (s *UserService) GetAllUsers() ([]UserRow, error) {
	var rows []UserRow
	err := s.DB.Table("users").
		Select("users.id, users.last_name, users.first_name, users.email, users.contact, users.address, users.photo, users.birth_date, occupations.description as occupation").
		Joins("left join occupations on occupations.id = users.occupation").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// 出生日期按旧接口格式化为 "January 02, 2006"
	for i := range rows {
		rows[i].BirthDate = formatLongDate(rows[i].BirthDate)
	}
	return rows, nil
}

// 4 GetUnreservedUsers 获取没有任何入住记录的用户
func (s *UserService) GetUnreservedUsers() ([]UserBrief, error) {
	var rows []UserBrief
	err := s.DB.Table("users").
		Select("users.id, users.last_name, users.first_name").
		Where("users.id NOT IN (SELECT tenants.user_id FROM tenants)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 5 UpdatePassword 重置指定用户的密码
func (s *UserService) UpdatePassword(id uint, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	result := s.DB.Model(&models.User{}).Where("id = ?", id).Update("password", hashed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// 6 CheckUserInfo 检查用户资料是否填写完整
func (s *UserService) CheckUserInfo(userID uint) (*UserInfoStatus, error) {
	var status UserInfoStatus
	err := s.DB.Table("users").
		Select("COUNT(*) as is_userinfo_incomplete, users.first_name").
		Where("(users.photo IS NULL OR users.address IS NULL OR users.birth_date IS NULL OR users.contact IS NULL OR users.occupation IS NULL) AND users.id = ?", userID).
		Group("users.first_name").
		Scan(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// 7 UpdateUserInfo 更新用户资料（地址、出生日期、职业、头像）
func (s *UserService) UpdateUserInfo(userID uint, address, birthDate string, occupation uint, photo string) error {
	updates := map[string]interface{}{
		"address":    address,
		"birth_date": birthDate,
		"occupation": occupation,
		"photo":      photo,
	}

	result := s.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// formatLongDate 将 YYYY-MM-DD 格式化为 "January 02, 2006"；解析失败原样返回
func formatLongDate(date *string) *string {
	if date == nil || *date == "" {
		return date
	}
	t, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return date
	}
	formatted := t.Format("January 02, 2006")
	return &formatted
}
