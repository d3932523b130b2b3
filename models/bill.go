package models

// Bill 表示向租户开出的账单
type Bill struct {
	BaseModel
	TenantID     uint    `gorm:"not null;index" json:"tenant_id"`
	Date         string  `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	ParticularID uint    `gorm:"not null" json:"particular_id"`
	AmountDue    float64 `gorm:"type:decimal(10,2);not null" json:"amount_due"`

	// 关联关系
	Tenant     *Tenant     `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Particular *Particular `gorm:"foreignKey:ParticularID" json:"particular,omitempty"`
	Payments   []Payment   `gorm:"foreignKey:BillID" json:"payments,omitempty"`
}
