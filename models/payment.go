package models

// Payment 表示针对某张账单的一次缴费
type Payment struct {
	BaseModel
	BillID      uint    `gorm:"not null;index" json:"bill_id"`
	AmountPaid  float64 `gorm:"type:decimal(10,2);not null" json:"amount_paid"`
	Date        string  `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Particulars string  `gorm:"type:varchar(200)" json:"particulars"`  // 备注文本

	// 关联关系
	Bill *Bill `gorm:"foreignKey:BillID" json:"bill,omitempty"`
}
