package models

// Tenant 表示用户与单元之间的入住关系（不是人员记录）
type Tenant struct {
	BaseModel
	UnitID uint `gorm:"not null;index" json:"unit_id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	// 关联关系
	Unit  *Unit  `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bills []Bill `gorm:"foreignKey:TenantID" json:"bills,omitempty"`
}
