package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceUnitController 定义单元控制器接口
type InterfaceUnitController interface {
	GetUnits()
	GetUnit()
	GetAvailableUnits()
	CreateUnit()
	UpdateUnit()
	DeleteUnit()
}

// UnitController 处理出租单元相关的请求
type UnitController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUnitController 创建一个新的单元控制器
func NewUnitController(ctx *gin.Context, container *container.ServiceContainer) *UnitController {
	return &UnitController{
		Ctx:       ctx,
		Container: container,
	}
}

// UnitRequest 表示单元创建与更新请求
type UnitRequest struct {
	Desc  string `json:"desc" binding:"required" example:"Unit 2B, 2nd floor"`
	Image string `json:"image" example:"unit-2b.jpg"`
}

// GetUnits 获取所有单元
// @Summary      获取单元列表
// @Tags         Unit
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /units [get]
func (c *UnitController) GetUnits() {
	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	units, err := unitService.GetAllUnits()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, units)
}

// GetUnit 获取单个单元
// @Summary      获取单元详情
// @Tags         Unit
// @Produce      json
// @Param        id path int true "单元ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /units/{id} [get]
func (c *UnitController) GetUnit() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	unit, err := unitService.GetUnitByID(id)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, unit)
}

// GetAvailableUnits 获取对当前用户可预订的单元
// @Summary      获取可预订单元
// @Description  排除已入住的单元与当前用户待审批预订占用的单元
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "令牌"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /units-available [post]
func (c *UnitController) GetAvailableUnits() {
	var req TokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	claims, ok := authorize(c.Ctx, c.Container, req.Token)
	if !ok {
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	units, err := unitService.GetAvailableUnits(claims.ID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, units)
}

// CreateUnit 创建单元
// @Summary      创建单元
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        request body UnitRequest true "单元信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /units [post]
func (c *UnitController) CreateUnit() {
	var req UnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	unit, err := unitService.CreateUnit(req.Desc, req.Image)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, unit)
}

// UpdateUnit 更新单元
// @Summary      更新单元
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        id path int true "单元ID"
// @Param        request body UnitRequest true "单元信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /units/{id} [put]
func (c *UnitController) UpdateUnit() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req UnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	if err := unitService.UpdateUnit(id, req.Desc, req.Image); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Updated"})
}

// DeleteUnit 删除单元
// @Summary      删除单元
// @Tags         Unit
// @Produce      json
// @Param        id path int true "单元ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /units/{id} [delete]
func (c *UnitController) DeleteUnit() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	if err := unitService.DeleteUnit(id); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Deleted"})
}

// HandleUnitFunc 返回一个处理单元请求的Gin处理函数
func HandleUnitFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUnitController(ctx, container)

		switch method {
		case "getUnits":
			controller.GetUnits()
		case "getUnit":
			controller.GetUnit()
		case "getAvailableUnits":
			controller.GetAvailableUnits()
		case "createUnit":
			controller.CreateUnit()
		case "updateUnit":
			controller.UpdateUnit()
		case "deleteUnit":
			controller.DeleteUnit()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
