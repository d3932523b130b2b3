package models

// Unit 表示可出租的单元
type Unit struct {
	BaseModel
	Description string `gorm:"column:description;type:varchar(200);not null" json:"desc"` // 旧客户端使用 "desc" 字段名
	Image       string `gorm:"type:varchar(255)" json:"image"`

	// 关联关系
	Tenancies    []Tenant      `gorm:"foreignKey:UnitID" json:"tenancies,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:UnitID" json:"reservations,omitempty"`
}
