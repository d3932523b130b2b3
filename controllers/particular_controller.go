package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceParticularController 定义收费项目控制器接口
type InterfaceParticularController interface {
	GetParticulars()
	GetParticular()
	CreateParticular()
	UpdateParticular()
	DeleteParticular()
}

// ParticularController 处理收费项目相关的请求
type ParticularController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewParticularController 创建一个新的收费项目控制器
func NewParticularController(ctx *gin.Context, container *container.ServiceContainer) *ParticularController {
	return &ParticularController{
		Ctx:       ctx,
		Container: container,
	}
}

// DescriptionRequest 表示只携带描述文本的请求
type DescriptionRequest struct {
	Description string `json:"description" binding:"required" example:"Monthly Rent"`
}

// GetParticulars 获取所有收费项目
// @Summary      获取收费项目列表
// @Tags         Particular
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /particulars [get]
func (c *ParticularController) GetParticulars() {
	particularService := c.Container.GetService("particular").(services.InterfaceParticularService)
	particulars, err := particularService.GetAllParticulars()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, particulars)
}

// GetParticular 获取单个收费项目
// @Summary      获取收费项目详情
// @Tags         Particular
// @Produce      json
// @Param        id path int true "收费项目ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /particulars/{id} [get]
func (c *ParticularController) GetParticular() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	particularService := c.Container.GetService("particular").(services.InterfaceParticularService)
	particular, err := particularService.GetParticularByID(id)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, particular)
}

// CreateParticular 创建收费项目
// @Summary      创建收费项目
// @Tags         Particular
// @Accept       json
// @Produce      json
// @Param        request body DescriptionRequest true "项目描述"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /particulars [post]
func (c *ParticularController) CreateParticular() {
	var req DescriptionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	particularService := c.Container.GetService("particular").(services.InterfaceParticularService)
	particular, err := particularService.CreateParticular(req.Description)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, particular)
}

// UpdateParticular 更新收费项目
// @Summary      更新收费项目
// @Tags         Particular
// @Accept       json
// @Produce      json
// @Param        id path int true "收费项目ID"
// @Param        request body DescriptionRequest true "项目描述"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /particulars/{id} [put]
func (c *ParticularController) UpdateParticular() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req DescriptionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	particularService := c.Container.GetService("particular").(services.InterfaceParticularService)
	if err := particularService.UpdateParticular(id, req.Description); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Updated"})
}

// DeleteParticular 删除收费项目
// @Summary      删除收费项目
// @Tags         Particular
// @Produce      json
// @Param        id path int true "收费项目ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /particulars/{id} [delete]
func (c *ParticularController) DeleteParticular() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	particularService := c.Container.GetService("particular").(services.InterfaceParticularService)
	if err := particularService.DeleteParticular(id); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Deleted"})
}

// HandleParticularFunc 返回一个处理收费项目请求的Gin处理函数
func HandleParticularFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewParticularController(ctx, container)

		switch method {
		case "getParticulars":
			controller.GetParticulars()
		case "getParticular":
			controller.GetParticular()
		case "createParticular":
			controller.CreateParticular()
		case "updateParticular":
			controller.UpdateParticular()
		case "deleteParticular":
			controller.DeleteParticular()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
