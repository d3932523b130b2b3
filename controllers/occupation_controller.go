package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceOccupationController 定义职业控制器接口
type InterfaceOccupationController interface {
	GetOccupations()
	GetOccupation()
	CreateOccupation()
	UpdateOccupation()
	DeleteOccupation()
}

// OccupationController 处理职业目录相关的请求
type OccupationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOccupationController 创建一个新的职业控制器
func NewOccupationController(ctx *gin.Context, container *container.ServiceContainer) *OccupationController {
	return &OccupationController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetOccupations 获取所有职业
// @Summary      获取职业列表
// @Tags         Occupation
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /occupations [get]
func (c *OccupationController) GetOccupations() {
	occupationService := c.Container.GetService("occupation").(services.InterfaceOccupationService)
	occupations, err := occupationService.GetAllOccupations()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, occupations)
}

// GetOccupation 获取单个职业
// @Summary      获取职业详情
// @Tags         Occupation
// @Produce      json
// @Param        id path int true "职业ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /occupations/{id} [get]
func (c *OccupationController) GetOccupation() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	occupationService := c.Container.GetService("occupation").(services.InterfaceOccupationService)
	occupation, err := occupationService.GetOccupationByID(id)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, occupation)
}

// CreateOccupation 创建职业
// @Summary      创建职业
// @Tags         Occupation
// @Accept       json
// @Produce      json
// @Param        request body DescriptionRequest true "职业描述"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /occupations [post]
func (c *OccupationController) CreateOccupation() {
	var req DescriptionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	occupationService := c.Container.GetService("occupation").(services.InterfaceOccupationService)
	occupation, err := occupationService.CreateOccupation(req.Description)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, occupation)
}

// UpdateOccupation 更新职业
// @Summary      更新职业
// @Tags         Occupation
// @Accept       json
// @Produce      json
// @Param        id path int true "职业ID"
// @Param        request body DescriptionRequest true "职业描述"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /occupations/{id} [put]
func (c *OccupationController) UpdateOccupation() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req DescriptionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	occupationService := c.Container.GetService("occupation").(services.InterfaceOccupationService)
	if err := occupationService.UpdateOccupation(id, req.Description); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Updated"})
}

// DeleteOccupation 删除职业
// @Summary      删除职业
// @Tags         Occupation
// @Produce      json
// @Param        id path int true "职业ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /occupations/{id} [delete]
func (c *OccupationController) DeleteOccupation() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	occupationService := c.Container.GetService("occupation").(services.InterfaceOccupationService)
	if err := occupationService.DeleteOccupation(id); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Deleted"})
}

// HandleOccupationFunc 返回一个处理职业请求的Gin处理函数
func HandleOccupationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOccupationController(ctx, container)

		switch method {
		case "getOccupations":
			controller.GetOccupations()
		case "getOccupation":
			controller.GetOccupation()
		case "createOccupation":
			controller.CreateOccupation()
		case "updateOccupation":
			controller.UpdateOccupation()
		case "deleteOccupation":
			controller.DeleteOccupation()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
