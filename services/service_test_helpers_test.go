package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// setupTestDB 为每个测试创建独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Occupation{},
		&models.Unit{},
		&models.Tenant{},
		&models.Particular{},
		&models.Bill{},
		&models.Payment{},
		&models.Reservation{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey: "test-secret-key",
		UploadDir:    "uploads",
	}
}
