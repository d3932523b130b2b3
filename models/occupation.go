package models

// Occupation 表示用户资料中可选择的职业
type Occupation struct {
	BaseModel
	Description string `gorm:"type:varchar(100);not null" json:"description"`
}
