package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tulayan-http-service/models"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret123",
		RoleID:    models.RoleTenant,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedUnit(t *testing.T, db *gorm.DB, desc string) *models.Unit {
	t.Helper()
	unit := &models.Unit{Description: desc}
	require.NoError(t, db.Create(unit).Error)
	return unit
}

func TestCreateReservation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db, testConfig(), nil)

	user := seedUser(t, db, "a@t.com")
	unit := seedUnit(t, db, "Unit 1A")

	reservation, err := svc.CreateReservation(user.ID, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, reservation.Status)
	assert.Equal(t, models.NotificationUnread, reservation.NotificationStatus)
	assert.Equal(t, time.Now().Format("2006-01-02"), reservation.Date)

	// 不存在的单元不能预订
	_, err = svc.CreateReservation(user.ID, 9999)
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestAvailableUnitsExcludePendingOnlyForOwner(t *testing.T) {
	db := setupTestDB(t)
	reservations := NewReservationService(db, testConfig(), nil)
	units := NewUnitService(db, testConfig())

	reserver := seedUser(t, db, "a@t.com")
	other := seedUser(t, db, "b@t.com")
	unit := seedUnit(t, db, "Unit 1A")

	_, err := reservations.CreateReservation(reserver.ID, unit.ID)
	require.NoError(t, err)

	// 预订者自己看不到该单元
	visible, err := units.GetAvailableUnits(reserver.ID)
	require.NoError(t, err)
	assert.Empty(t, visible)

	// 其他用户仍然可以看到
	visible, err = units.GetAvailableUnits(other.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, unit.ID, visible[0].ID)
}

func TestApproveReservationCreatesTenancy(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db, testConfig(), nil)
	units := NewUnitService(db, testConfig())

	user := seedUser(t, db, "a@t.com")
	unit := seedUnit(t, db, "Unit 1A")

	reservation, err := svc.CreateReservation(user.ID, unit.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ApproveReservation(reservation.ID))

	// 状态变为已通过
	var updated models.Reservation
	require.NoError(t, db.First(&updated, reservation.ID).Error)
	assert.Equal(t, models.ReservationApproved, updated.Status)

	// 生成入住记录
	var tenant models.Tenant
	require.NoError(t, db.Where("unit_id = ? AND user_id = ?", unit.ID, user.ID).First(&tenant).Error)

	// 入住后单元对所有人不可见
	visible, err := units.GetAvailableUnits(user.ID)
	require.NoError(t, err)
	assert.Empty(t, visible)

	// 重复审批幂等，不会生成第二条入住记录
	require.NoError(t, svc.ApproveReservation(reservation.ID))
	var count int64
	require.NoError(t, db.Model(&models.Tenant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// 已通过的预订不能再取消
	assert.ErrorIs(t, svc.CancelReservation(reservation.ID), ErrReservationFinalized)
}

func TestCancelReservation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db, testConfig(), nil)

	user := seedUser(t, db, "a@t.com")
	unit := seedUnit(t, db, "Unit 1A")

	reservation, err := svc.CreateReservation(user.ID, unit.ID)
	require.NoError(t, err)

	require.NoError(t, svc.CancelReservation(reservation.ID))

	var updated models.Reservation
	require.NoError(t, db.First(&updated, reservation.ID).Error)
	assert.Equal(t, models.ReservationCancelled, updated.Status)

	// 重复取消视为成功
	require.NoError(t, svc.CancelReservation(reservation.ID))

	// 已取消的预订不能审批
	assert.ErrorIs(t, svc.ApproveReservation(reservation.ID), ErrReservationFinalized)

	// 不存在的预订
	assert.ErrorIs(t, svc.CancelReservation(9999), ErrReservationNotFound)
}

func TestNotificationLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db, testConfig(), nil)

	user := seedUser(t, db, "a@t.com")
	unitA := seedUnit(t, db, "Unit 1A")
	unitB := seedUnit(t, db, "Unit 1B")

	_, err := svc.CreateReservation(user.ID, unitA.ID)
	require.NoError(t, err)
	_, err = svc.CreateReservation(user.ID, unitB.ID)
	require.NoError(t, err)

	count, err := svc.UnreadNotificationCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// 全局标记已读
	require.NoError(t, svc.MarkAllNotificationsRead())

	count, err = svc.UnreadNotificationCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetMyReservationsAndRequests(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db, testConfig(), nil)

	mine := seedUser(t, db, "a@t.com")
	other := seedUser(t, db, "b@t.com")
	unitA := seedUnit(t, db, "Unit 1A")
	unitB := seedUnit(t, db, "Unit 1B")

	_, err := svc.CreateReservation(mine.ID, unitA.ID)
	require.NoError(t, err)
	_, err = svc.CreateReservation(other.ID, unitB.ID)
	require.NoError(t, err)

	rows, err := svc.GetMyReservations(mine.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Unit 1A", rows[0].UnitDesc)
	assert.Equal(t, models.ReservationPending, rows[0].Status)

	requests, err := svc.GetReservationRequests()
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}
