package services

import (
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

var (
	// ErrReservationNotFound 预订不存在
	ErrReservationNotFound = errors.New("The reservation with the given ID was not found.")
	// ErrReservationFinalized 预订已处于终态，不能再改变
	ErrReservationFinalized = errors.New("The reservation has already been finalized.")
)

// InterfaceReservationService defines the reservation service interface
type InterfaceReservationService interface {
	CreateReservation(userID, unitID uint) (*models.Reservation, error)
	GetMyReservations(userID uint) ([]ReservationRow, error)
	CancelReservation(id uint) error
	GetReservationRequests() ([]RequestRow, error)
	ApproveReservation(id uint) error
	UnreadNotificationCount() (int64, error)
	MarkAllNotificationsRead() error
}

// ReservationService 提供预订相关的服务
type ReservationService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
}

// NewReservationService 创建一个新的预订服务。redisService 可为 nil，
// 此时徽标计数每次都直接查询数据库。
func NewReservationService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceReservationService {
	return &ReservationService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// ReservationRow 表示租户侧的预订列表查询结果
type ReservationRow struct {
	ID       uint    `json:"id"`
	Date     string  `json:"date"`
	UnitID   uint    `json:"unit_id"`
	UnitDesc string  `json:"desc"`
	Status   int     `json:"status"`
	Image    string  `json:"image"`
	Receipt  *string `json:"receipt"`
}

// RequestRow 表示管理员侧的预订请求查询结果
type RequestRow struct {
	ID        uint    `json:"id"`
	Date      string  `json:"date"`
	UserID    uint    `json:"user_id"`
	LastName  string  `json:"last_name"`
	FirstName string  `json:"first_name"`
	Email     string  `json:"email"`
	Contact   *string `json:"contact"`
	Photo     *string `json:"photo"`
	UnitID    uint    `json:"unit_id"`
	UnitDesc  string  `json:"desc"`
	Image     string  `json:"image"`
	Status    int     `json:"status"`
	Receipt   *string `json:"receipt"`
}

// 1 CreateReservation 创建预订，日期取服务器当天，状态为待审批
func (s *ReservationService) CreateReservation(userID, unitID uint) (*models.Reservation, error) {
	// 单元必须存在
	var count int64
	if err := s.DB.Model(&models.Unit{}).Where("id = ?", unitID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUnitNotFound
	}

	reservation := &models.Reservation{
		Date:               time.Now().Format("2006-01-02"),
		UserID:             userID,
		UnitID:             unitID,
		Status:             models.ReservationPending,
		NotificationStatus: models.NotificationUnread,
	}
	if err := s.DB.Create(reservation).Error; err != nil {
		return nil, err
	}

	s.invalidateBadge()
	return reservation, nil
}

// 2 GetMyReservations 获取指定用户的所有预订（含单元描述）
func (s *ReservationService) GetMyReservations(userID uint) ([]ReservationRow, error) {
	var rows []ReservationRow
	err := s.DB.Table("reservations").
		Select("reservations.id, reservations.date, reservations.unit_id, units.description as unit_desc, reservations.status, units.image, reservations.receipt").
		Joins("join units on units.id = reservations.unit_id").
		Where("reservations.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 3 CancelReservation 取消预订。
// 待审批的预订置为已取消；重复取消视为成功（幂等）；
// 已审批的预订为终态，不允许取消。
func (s *ReservationService) CancelReservation(id uint) error {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return err
	}

	switch reservation.Status {
	case models.ReservationCancelled:
		return nil
	case models.ReservationApproved:
		return ErrReservationFinalized
	}

	err := s.DB.Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", models.ReservationCancelled).Error
	if err != nil {
		return err
	}

	s.invalidateBadge()
	return nil
}

// 4 GetReservationRequests 获取所有预订请求（管理员视角，连接用户与单元）
func (s *ReservationService) GetReservationRequests() ([]RequestRow, error) {
	var rows []RequestRow
	err := s.DB.Table("reservations").
		Select("reservations.id, reservations.date, reservations.user_id, users.last_name, users.first_name, users.email, users.contact, users.photo, reservations.unit_id, units.description as unit_desc, units.image, reservations.status, reservations.receipt").
		Joins("join users on users.id = reservations.user_id").
		Joins("join units on units.id = reservations.unit_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 5 ApproveReservation 审批通过预订并创建入住记录。
// 状态更新与入住记录插入在同一个事务中完成，只允许从待审批状态通过。
func (s *ReservationService) ApproveReservation(id uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		// 只有待审批的预订可以通过；重复审批幂等，已取消的拒绝
		if reservation.Status == models.ReservationApproved {
			return nil
		}
		if reservation.Status != models.ReservationPending {
			return ErrReservationFinalized
		}

		if err := tx.Model(&models.Reservation{}).
			Where("id = ?", id).
			Update("status", models.ReservationApproved).Error; err != nil {
			return err
		}

		tenant := &models.Tenant{
			UnitID: reservation.UnitID,
			UserID: reservation.UserID,
		}
		return tx.Create(tenant).Error
	})
	if err != nil {
		return err
	}

	s.invalidateBadge()
	return nil
}

// 6 UnreadNotificationCount 统计未读预订通知数量，结果短暂缓存在Redis中
func (s *ReservationService) UnreadNotificationCount() (int64, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.GetUnreadCount(); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) {
			config.Warning("读取未读计数缓存失败: %v", err)
		}
	}

	// 只统计仍处于待审批状态的未读预订
	var count int64
	err := s.DB.Model(&models.Reservation{}).
		Where("status = ? AND notification_status = ?", models.ReservationPending, models.NotificationUnread).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	if s.Redis != nil {
		if err := s.Redis.CacheUnreadCount(count); err != nil {
			config.Warning("写入未读计数缓存失败: %v", err)
		}
	}
	return count, nil
}

// 7 MarkAllNotificationsRead 将所有预订通知标记为已读
func (s *ReservationService) MarkAllNotificationsRead() error {
	err := s.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Reservation{}).
		Update("notification_status", models.NotificationRead).Error
	if err != nil {
		return err
	}

	s.invalidateBadge()
	return nil
}

// invalidateBadge 任何预订变更后使缓存的徽标计数失效
func (s *ReservationService) invalidateBadge() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.InvalidateUnreadCount(); err != nil {
		config.Warning("未读计数缓存失效失败: %v", err)
	}
}
