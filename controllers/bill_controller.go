package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceBillController 定义账单控制器接口
type InterfaceBillController interface {
	GetBillsByTenant()
	GetBill()
	GetMyBills()
	CreateBill()
	UpdateBill()
}

// BillController 处理账单相关的请求
type BillController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBillController 创建一个新的账单控制器
func NewBillController(ctx *gin.Context, container *container.ServiceContainer) *BillController {
	return &BillController{
		Ctx:       ctx,
		Container: container,
	}
}

// BillRequest 表示账单创建与更新请求
type BillRequest struct {
	TenantID   uint    `json:"tenant_id" example:"1"`
	Date       string  `json:"date" binding:"required" example:"2026-09-01"`
	Particular uint    `json:"particular" binding:"required" example:"1"`
	AmountDue  float64 `json:"amount_due" binding:"required" example:"3500"`
}

// GetBillsByTenant 获取指定入住记录的账单
// @Summary      获取租户账单
// @Description  返回入住记录名下的所有账单及余额
// @Tags         Bill
// @Produce      json
// @Param        tenant_id path int true "入住记录ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /bills/{tenant_id} [get]
func (c *BillController) GetBillsByTenant() {
	tenantID, ok := parseIDParam(c.Ctx, "tenant_id")
	if !ok {
		return
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bills, err := billService.GetBillsByTenant(tenantID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, bills)
}

// GetBill 获取单条账单
// @Summary      获取账单详情
// @Tags         Bill
// @Produce      json
// @Param        id path int true "账单ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /bills/get/{id} [get]
func (c *BillController) GetBill() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bill, err := billService.GetBillByID(id)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, bill)
}

// GetMyBills 获取当前用户名下的账单
// @Summary      获取我的账单
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "令牌"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /my-bills [post]
func (c *BillController) GetMyBills() {
	var req TokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	claims, ok := authorize(c.Ctx, c.Container, req.Token)
	if !ok {
		return
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bills, err := billService.GetBillsByUser(claims.ID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, bills)
}

// CreateBill 创建账单
// @Summary      创建账单
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        request body BillRequest true "账单信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /bills [post]
func (c *BillController) CreateBill() {
	var req BillRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bill, err := billService.CreateBill(req.TenantID, req.Date, req.Particular, req.AmountDue)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, bill)
}

// UpdateBill 更新账单
// @Summary      更新账单
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        id path int true "账单ID"
// @Param        request body BillRequest true "账单信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /bills/{id} [put]
func (c *BillController) UpdateBill() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req BillRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	if err := billService.UpdateBill(id, req.Date, req.Particular, req.AmountDue); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Updated"})
}

// HandleBillFunc 返回一个处理账单请求的Gin处理函数
func HandleBillFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBillController(ctx, container)

		switch method {
		case "getBillsByTenant":
			controller.GetBillsByTenant()
		case "getBill":
			controller.GetBill()
		case "getMyBills":
			controller.GetMyBills()
		case "createBill":
			controller.CreateBill()
		case "updateBill":
			controller.UpdateBill()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
