package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceReservationController 定义预订控制器接口
type InterfaceReservationController interface {
	CreateReservation()
	GetMyReservations()
	CancelMyReservation()
	GetReservationRequests()
	CancelReservationRequest()
	ApproveReservation()
	GetNotifications()
	MarkNotificationsRead()
}

// ReservationController 处理预订相关的请求
type ReservationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReservationController 创建一个新的预订控制器
func NewReservationController(ctx *gin.Context, container *container.ServiceContainer) *ReservationController {
	return &ReservationController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateReservationRequest 表示创建预订请求
type CreateReservationRequest struct {
	Token  string `json:"token" binding:"required"`
	UnitID uint   `json:"unit_id" binding:"required" example:"1"`
}

// ReservationIDRequest 表示携带预订ID的请求
type ReservationIDRequest struct {
	Token string `json:"token" binding:"required"`
	ID    uint   `json:"id" binding:"required" example:"1"`
}

// CreateReservation 创建预订
// @Summary      创建预订
// @Description  以当前用户身份预订指定单元，日期取服务器当天
// @Tags         Reservation
// @Accept       json
// @Produce      json
// @Param        request body CreateReservationRequest true "令牌与单元ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /reservations [post]
func (c *ReservationController) CreateReservation() {
	var req CreateReservationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	claims, ok := authorize(c.Ctx, c.Container, req.Token)
	if !ok {
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	reservation, err := reservationService.CreateReservation(claims.ID, req.UnitID)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, reservation)
}

// GetMyReservations 获取当前用户的预订
// @Summary      获取我的预订
// @Tags         Reservation
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "令牌"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /my-reservations [post]
func (c *ReservationController) GetMyReservations() {
	var req TokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	claims, ok := authorize(c.Ctx, c.Container, req.Token)
	if !ok {
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	reservations, err := reservationService.GetMyReservations(claims.ID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, reservations)
}

// CancelMyReservation 取消当前用户的预订
// @Summary      取消我的预订
// @Description  待审批的预订置为已取消；已审批的预订不能取消
// @Tags         Reservation
// @Accept       json
// @Produce      json
// @Param        request body ReservationIDRequest true "令牌与预订ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /my-reservations/cancel [post]
func (c *ReservationController) CancelMyReservation() {
	var req ReservationIDRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := authorize(c.Ctx, c.Container, req.Token); !ok {
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	if err := reservationService.CancelReservation(req.ID); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Cancelled"})
}

// GetReservationRequests 获取所有预订请求（管理员）
// @Summary      获取预订请求列表
// @Tags         Reservation
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "令牌"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /reservation-requests [post]
func (c *ReservationController) GetReservationRequests() {
	var req TokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := authorizeAdmin(c.Ctx, c.Container, req.Token); !ok {
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	requests, err := reservationService.GetReservationRequests()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, requests)
}

// CancelReservationRequest 取消预订请求（管理员）
// @Summary      取消预订请求
// @Tags         Reservation
// @Accept       json
// @Produce      json
// @Param        request body ReservationIDRequest true "令牌与预订ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /reservation-requests/cancel [post]
func (c *ReservationController) CancelReservationRequest() {
	var req ReservationIDRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := authorizeAdmin(c.Ctx, c.Container, req.Token); !ok {
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	if err := reservationService.CancelReservation(req.ID); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Cancelled"})
}

// ApproveReservation 审批通过预订（管理员）
// @Summary      审批预订
// @Description  将预订置为已通过并创建对应的入住记录
// @Tags         Reservation
// @Accept       json
// @Produce      json
// @Param        request body ReservationIDRequest true "令牌与预订ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /approve-reservation [post]
func (c *ReservationController) ApproveReservation() {
	var req ReservationIDRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := authorizeAdmin(c.Ctx, c.Container, req.Token); !ok {
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	if err := reservationService.ApproveReservation(req.ID); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Approved"})
}

// GetNotifications 获取未读预订通知数量
// @Summary      获取未读通知数量
// @Tags         Reservation
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications [get]
func (c *ReservationController) GetNotifications() {
	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	count, err := reservationService.UnreadNotificationCount()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, gin.H{"count": count})
}

// MarkNotificationsRead 将所有预订通知标记为已读
// @Summary      标记通知已读
// @Tags         Reservation
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /mark-notification-read [put]
func (c *ReservationController) MarkNotificationsRead() {
	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	if err := reservationService.MarkAllNotificationsRead(); err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Updated"})
}

// HandleReservationFunc 返回一个处理预订请求的Gin处理函数
func HandleReservationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReservationController(ctx, container)

		switch method {
		case "createReservation":
			controller.CreateReservation()
		case "getMyReservations":
			controller.GetMyReservations()
		case "cancelMyReservation":
			controller.CancelMyReservation()
		case "getReservationRequests":
			controller.GetReservationRequests()
		case "cancelReservationRequest":
			controller.CancelReservationRequest()
		case "approveReservation":
			controller.ApproveReservation()
		case "getNotifications":
			controller.GetNotifications()
		case "markNotificationsRead":
			controller.MarkNotificationsRead()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
