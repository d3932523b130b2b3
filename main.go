// @title           Tulayan Apartment Management API
// @version         1.0
// @description     Property rental management backend with reservations, billing and tenancy tracking

// @contact.name   API Support

// @host      localhost:3000
// @BasePath  /api
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
	"tulayan-http-service/routes"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}

	// 根据配置执行不同的数据库操作
	if cfg.DBMigrationMode == "drop" {
		// 删除并重建表
		log.Println("警告: 在drop模式下运行，将删除并重建所有表")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
	} else {
		// 默认AutoMigrate，只会添加新列和新表，不会删除或修改列
		log.Println("在标准模式下运行，将只添加新列和新表")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
	}

	// 确保系统中有管理员账户
	ensureAdminExists(db, cfg)

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// initDB 初始化数据库连接
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Occupation{},
		&models.Unit{},
		&models.Tenant{},
		&models.Particular{},
		&models.Bill{},
		&models.Payment{},
		&models.Reservation{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.Payment{},
		&models.Bill{},
		&models.Reservation{},
		&models.Tenant{},
		&models.Particular{},
		&models.Unit{},
		&models.User{},
		&models.Occupation{},
	)
	if err != nil {
		return err
	}

	return autoMigrate(db)
}

// ensureAdminExists 确保系统中存在管理员账户，不存在则按配置创建
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.User{}).Where("role_id = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		config.Error("查询管理员账户失败: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := &models.User{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     cfg.DefaultAdminEmail,
		Password:  cfg.DefaultAdminPassword, // BeforeCreate 钩子中进行哈希
		RoleID:    models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		config.Error("创建默认管理员失败: %v", err)
		return
	}
	config.Info("已创建默认管理员账户: %s", cfg.DefaultAdminEmail)
}
