package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfacePaymentController 定义付款控制器接口
type InterfacePaymentController interface {
	GetPaymentsByBill()
	CreatePayment()
}

// PaymentController 处理付款相关的请求
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController 创建一个新的付款控制器
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest 表示付款创建请求
type PaymentRequest struct {
	BillID      uint    `json:"bill_id" binding:"required" example:"1"`
	AmountPaid  float64 `json:"amount_paid" binding:"required" example:"1500"`
	Date        string  `json:"date" binding:"required" example:"2026-09-01"`
	Particulars string  `json:"particulars" example:"Partial payment"`
}

// GetPaymentsByBill 获取指定账单的付款记录
// @Summary      获取账单付款记录
// @Tags         Payment
// @Produce      json
// @Param        bill_id path int true "账单ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /payments/{bill_id} [get]
func (c *PaymentController) GetPaymentsByBill() {
	billID, ok := parseIDParam(c.Ctx, "bill_id")
	if !ok {
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, err := paymentService.GetPaymentsByBill(billID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, payments)
}

// CreatePayment 创建付款记录
// @Summary      创建付款记录
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body PaymentRequest true "付款信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /payments [post]
func (c *PaymentController) CreatePayment() {
	var req PaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.CreatePayment(req.BillID, req.AmountPaid, req.Date, req.Particulars)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, payment)
}

// HandlePaymentFunc 返回一个处理付款请求的Gin处理函数
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPaymentsByBill":
			controller.GetPaymentsByBill()
		case "createPayment":
			controller.CreatePayment()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
