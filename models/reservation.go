package models

// 预订状态：Pending 可以流转到 Approved 或 Cancelled，后两者为终态
const (
	ReservationPending   = 1
	ReservationApproved  = 2
	ReservationCancelled = 4
)

// 通知读取状态
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// Reservation 表示用户对某个单元的预订申请
type Reservation struct {
	BaseModel
	Date               string  `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	UserID             uint    `gorm:"not null;index" json:"user_id"`
	UnitID             uint    `gorm:"not null;index" json:"unit_id"`
	Status             int     `gorm:"not null;default:1;index" json:"status"`
	NotificationStatus string  `gorm:"type:varchar(10);not null;default:'unread'" json:"notification_status"`
	Receipt            *string `gorm:"type:varchar(255)" json:"receipt"`

	// 关联关系
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Unit *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}
