package models

import (
	"time"

	"gorm.io/gorm"

	"tulayan-http-service/utils"
)

// 用户角色
const (
	RoleAdmin  = 1
	RoleTenant = 2
)

// User represents registered accounts (admins and tenants)
type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName  string  `gorm:"type:varchar(50);not null" json:"last_name"`
	Contact   *string `gorm:"type:varchar(30)" json:"contact"`
	Email     string  `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password  string  `gorm:"type:varchar(100);not null" json:"-"` // 不在JSON中暴露密码
	RoleID    int     `gorm:"not null;default:2" json:"role_id"`   // 1=admin, 2=tenant

	// 可选的个人资料字段
	Photo      *string `gorm:"type:varchar(255)" json:"photo"`
	Address    *string `gorm:"type:varchar(200)" json:"address"`
	BirthDate  *string `gorm:"type:varchar(10)" json:"birth_date"` // YYYY-MM-DD
	Occupation *uint   `json:"occupation"`                         // 关联 occupations.id

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Tenancies    []Tenant      `gorm:"foreignKey:UserID" json:"tenancies,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:UserID" json:"reservations,omitempty"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前运行
func (u *User) BeforeCreate(tx *gorm.DB) error {
	// 如果提供了密码，对其进行哈希处理
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (u *User) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}
