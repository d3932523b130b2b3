package container

import (
	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/services"
)

// ServiceContainer 服务容器，集中创建并持有所有服务实例
type ServiceContainer struct {
	DB *gorm.DB

	JWTService         services.InterfaceJWTService
	UserService        services.InterfaceUserService
	UnitService        services.InterfaceUnitService
	TenantService      services.InterfaceTenantService
	BillService        services.InterfaceBillService
	PaymentService     services.InterfacePaymentService
	ReservationService services.InterfaceReservationService
	ParticularService  services.InterfaceParticularService
	OccupationService  services.InterfaceOccupationService
	UploadService      services.InterfaceUploadService
	RedisService       services.InterfaceRedisService
}

// NewServiceContainer 创建服务容器。Redis 连接探测失败时降级运行，
// 依赖缓存的服务收到 nil 并退回直查数据库。
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	var redisService services.InterfaceRedisService
	rs := services.NewRedisService(cfg)
	if err := rs.Client.Ping(rs.Ctx).Err(); err != nil {
		config.Warning("Redis连接失败，徽标计数缓存停用: %v", err)
	} else {
		redisService = rs
	}

	return &ServiceContainer{
		DB:                 db,
		JWTService:         services.NewJWTService(cfg),
		UserService:        services.NewUserService(db, cfg),
		UnitService:        services.NewUnitService(db, cfg),
		TenantService:      services.NewTenantService(db, cfg),
		BillService:        services.NewBillService(db, cfg),
		PaymentService:     services.NewPaymentService(db, cfg),
		ReservationService: services.NewReservationService(db, cfg, redisService),
		ParticularService:  services.NewParticularService(db, cfg),
		OccupationService:  services.NewOccupationService(db, cfg),
		UploadService:      services.NewUploadService(db, cfg),
		RedisService:       redisService,
	}
}

// GetService 按名称获取服务实例
func (c *ServiceContainer) GetService(name string) interface{} {
	switch name {
	case "jwt":
		return c.JWTService
	case "user":
		return c.UserService
	case "unit":
		return c.UnitService
	case "tenant":
		return c.TenantService
	case "bill":
		return c.BillService
	case "payment":
		return c.PaymentService
	case "reservation":
		return c.ReservationService
	case "particular":
		return c.ParticularService
	case "occupation":
		return c.OccupationService
	case "upload":
		return c.UploadService
	case "redis":
		return c.RedisService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.DB
}
