package models

// Particular 表示账单的费用项目类别
type Particular struct {
	BaseModel
	Description string `gorm:"type:varchar(100);not null" json:"description"`
}
