package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/controllers"
	_ "tulayan-http-service/docs"
	"tulayan-http-service/middleware"
	"tulayan-http-service/services/container"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件，来源锁定为前端站点
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 上传文件直接从根路径提供
	r.GET("/uploads/:filename", controllers.HandleUploadFunc(serviceContainer, "serveFile"))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径，整体启用限流
	api := r.Group("/api")
	api.Use(middleware.RateLimiter(middleware.DefaultRateLimiterConfig))

	// 健康检查
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 认证路由
	api.POST("/auth", controllers.HandleJWTFunc(container, "auth"))
	api.POST("/userinfo", controllers.HandleJWTFunc(container, "userInfo"))
	api.POST("/check-userinfo", controllers.HandleJWTFunc(container, "checkUserInfo"))

	// 用户路由
	api.POST("/users", controllers.HandleUserFunc(container, "register"))
	api.GET("/users", controllers.HandleUserFunc(container, "getUsers"))
	api.GET("/users-unreserved", controllers.HandleUserFunc(container, "getUnreservedUsers"))
	api.PUT("/users/:id", controllers.HandleUserFunc(container, "resetPassword"))
	api.PUT("/update-userinfo", controllers.HandleUserFunc(container, "updateUserInfo"))

	// 单元路由
	api.GET("/units", controllers.HandleUnitFunc(container, "getUnits"))
	api.POST("/units", controllers.HandleUnitFunc(container, "createUnit"))
	api.POST("/units-available", controllers.HandleUnitFunc(container, "getAvailableUnits"))
	api.GET("/units/:id", controllers.HandleUnitFunc(container, "getUnit"))
	api.PUT("/units/:id", controllers.HandleUnitFunc(container, "updateUnit"))
	api.DELETE("/units/:id", controllers.HandleUnitFunc(container, "deleteUnit"))

	// 入住记录路由
	api.GET("/tenants", controllers.HandleTenantFunc(container, "getTenants"))
	api.POST("/tenants", controllers.HandleTenantFunc(container, "createTenant"))
	api.GET("/tenants/:id", controllers.HandleTenantFunc(container, "getTenant"))
	api.PUT("/tenants/:id", controllers.HandleTenantFunc(container, "updateTenant"))
	api.DELETE("/tenants/:id", controllers.HandleTenantFunc(container, "deleteTenant"))

	// 账单路由
	api.POST("/bills", controllers.HandleBillFunc(container, "createBill"))
	api.GET("/bills/get/:id", controllers.HandleBillFunc(container, "getBill"))
	api.GET("/bills/:tenant_id", controllers.HandleBillFunc(container, "getBillsByTenant"))
	api.PUT("/bills/:id", controllers.HandleBillFunc(container, "updateBill"))
	api.POST("/my-bills", controllers.HandleBillFunc(container, "getMyBills"))

	// 付款路由
	api.POST("/payments", controllers.HandlePaymentFunc(container, "createPayment"))
	api.GET("/payments/:bill_id", controllers.HandlePaymentFunc(container, "getPaymentsByBill"))

	// 预订路由
	api.POST("/reservations", controllers.HandleReservationFunc(container, "createReservation"))
	api.POST("/my-reservations", controllers.HandleReservationFunc(container, "getMyReservations"))
	api.POST("/my-reservations/cancel", controllers.HandleReservationFunc(container, "cancelMyReservation"))
	api.POST("/reservation-requests", controllers.HandleReservationFunc(container, "getReservationRequests"))
	api.POST("/reservation-requests/cancel", controllers.HandleReservationFunc(container, "cancelReservationRequest"))
	api.POST("/approve-reservation", controllers.HandleReservationFunc(container, "approveReservation"))
	api.GET("/notifications", controllers.HandleReservationFunc(container, "getNotifications"))
	api.PUT("/mark-notification-read", controllers.HandleReservationFunc(container, "markNotificationsRead"))

	// 收费项目路由
	api.GET("/particulars", controllers.HandleParticularFunc(container, "getParticulars"))
	api.POST("/particulars", controllers.HandleParticularFunc(container, "createParticular"))
	api.GET("/particulars/:id", controllers.HandleParticularFunc(container, "getParticular"))
	api.PUT("/particulars/:id", controllers.HandleParticularFunc(container, "updateParticular"))
	api.DELETE("/particulars/:id", controllers.HandleParticularFunc(container, "deleteParticular"))

	// 职业路由
	api.GET("/occupations", controllers.HandleOccupationFunc(container, "getOccupations"))
	api.POST("/occupations", controllers.HandleOccupationFunc(container, "createOccupation"))
	api.GET("/occupations/:id", controllers.HandleOccupationFunc(container, "getOccupation"))
	api.PUT("/occupations/:id", controllers.HandleOccupationFunc(container, "updateOccupation"))
	api.DELETE("/occupations/:id", controllers.HandleOccupationFunc(container, "deleteOccupation"))

	// 上传路由
	api.POST("/upload", controllers.HandleUploadFunc(container, "uploadReceipt"))
}
