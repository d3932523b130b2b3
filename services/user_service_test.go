package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tulayan-http-service/models"
	"tulayan-http-service/utils"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register("Juan", "Dela Cruz", "juan@tulayan.com", "09171234567", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTenant, user.RoleID)

	// 密码入库前必须经过哈希
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.Password))

	got, err := svc.Authenticate("juan@tulayan.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate("juan@tulayan.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@tulayan.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	_, err := svc.Register("Juan", "Dela Cruz", "juan@tulayan.com", "", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("Pedro", "Reyes", "juan@tulayan.com", "", "other456")
	assert.ErrorIs(t, err, ErrEmailAlreadyExist)
}

func TestGetAllUsersFormatsBirthDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	occupation := models.Occupation{Description: "Engineer"}
	require.NoError(t, db.Create(&occupation).Error)

	birth := "1990-05-04"
	user := models.User{
		FirstName:  "Maria",
		LastName:   "Santos",
		Email:      "maria@tulayan.com",
		Password:   "secret123",
		RoleID:     models.RoleTenant,
		BirthDate:  &birth,
		Occupation: &occupation.ID,
	}
	require.NoError(t, db.Create(&user).Error)

	rows, err := svc.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].BirthDate)
	assert.Equal(t, "May 04, 1990", *rows[0].BirthDate)
	require.NotNil(t, rows[0].Occupation)
	assert.Equal(t, "Engineer", *rows[0].Occupation)
}

func TestGetUnreservedUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	housed := models.User{FirstName: "A", LastName: "A", Email: "a@t.com", Password: "p1saasd", RoleID: models.RoleTenant}
	free := models.User{FirstName: "B", LastName: "B", Email: "b@t.com", Password: "p2saasd", RoleID: models.RoleTenant}
	require.NoError(t, db.Create(&housed).Error)
	require.NoError(t, db.Create(&free).Error)

	unit := models.Unit{Description: "Unit 1A"}
	require.NoError(t, db.Create(&unit).Error)
	require.NoError(t, db.Create(&models.Tenant{UnitID: unit.ID, UserID: housed.ID}).Error)

	rows, err := svc.GetUnreservedUsers()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, free.ID, rows[0].ID)
}

func TestUpdatePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register("Juan", "Dela Cruz", "juan@tulayan.com", "", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(user.ID, "newpass99"))

	_, err = svc.Authenticate("juan@tulayan.com", "newpass99")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.UpdatePassword(9999, "whatever1"), ErrUserNotFound)
}

func TestCheckUserInfo(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register("Juan", "Dela Cruz", "juan@tulayan.com", "", "secret123")
	require.NoError(t, err)

	// 新注册用户资料不完整
	status, err := svc.CheckUserInfo(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.IsUserinfoIncomplete)
	assert.Equal(t, "Juan", status.FirstName)

	// 补全资料后不再命中
	occupation := models.Occupation{Description: "Teacher"}
	require.NoError(t, db.Create(&occupation).Error)
	require.NoError(t, svc.UpdateUserInfo(user.ID, "123 Rizal St", "1992-01-15", occupation.ID, "photo.jpg"))
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("contact", "09171234567").Error)

	status, err = svc.CheckUserInfo(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.IsUserinfoIncomplete)
}
