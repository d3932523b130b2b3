package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceTenantController 定义入住记录控制器接口
type InterfaceTenantController interface {
	GetTenants()
	GetTenant()
	CreateTenant()
	UpdateTenant()
	DeleteTenant()
}

// TenantController 处理入住记录相关的请求
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController 创建一个新的入住记录控制器
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// TenantRequest 表示入住记录创建与更新请求
type TenantRequest struct {
	UnitID uint `json:"unit_id" binding:"required" example:"1"`
	UserID uint `json:"user_id" binding:"required" example:"2"`
}

// GetTenants 获取所有入住记录
// @Summary      获取入住记录列表
// @Tags         Tenant
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /tenants [get]
func (c *TenantController) GetTenants() {
	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenants, err := tenantService.GetAllTenants()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, tenants)
}

// GetTenant 获取单条入住记录
// @Summary      获取入住记录详情
// @Tags         Tenant
// @Produce      json
// @Param        id path int true "入住记录ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id} [get]
func (c *TenantController) GetTenant() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.GetTenantByID(id)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// CreateTenant 创建入住记录
// @Summary      创建入住记录
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        request body TenantRequest true "入住信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /tenants [post]
func (c *TenantController) CreateTenant() {
	var req TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.CreateTenant(req.UnitID, req.UserID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, tenant)
}

// UpdateTenant 更新入住记录
// @Summary      更新入住记录
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "入住记录ID"
// @Param        request body TenantRequest true "入住信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id} [put]
func (c *TenantController) UpdateTenant() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.UpdateTenant(id, req.UnitID, req.UserID); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Updated"})
}

// DeleteTenant 删除入住记录
// @Summary      删除入住记录
// @Tags         Tenant
// @Produce      json
// @Param        id path int true "入住记录ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id} [delete]
func (c *TenantController) DeleteTenant() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.DeleteTenant(id); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Deleted"})
}

// HandleTenantFunc 返回一个处理入住记录请求的Gin处理函数
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "createTenant":
			controller.CreateTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "deleteTenant":
			controller.DeleteTenant()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
