package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Auth()
	UserInfo()
	CheckUserInfo()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// AuthRequest 表示登录请求
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@tulayan.com"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// TokenRequest 表示只携带令牌的请求
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// Auth 登录并签发令牌
// @Summary      用户登录
// @Description  校验邮箱和密码，返回JWT令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body AuthRequest true "登录信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /auth [post]
func (c *JWTController) Auth() {
	var req AuthRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Authenticate(req.Email, req.Password)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"token": token})
}

// UserInfo 解码令牌并返回其中的用户信息
// @Summary      获取当前用户信息
// @Description  解码请求体中的令牌，返回载荷中的用户字段
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "令牌"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /userinfo [post]
func (c *JWTController) UserInfo() {
	var req TokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	claims, ok := authorize(c.Ctx, c.Container, req.Token)
	if !ok {
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":         claims.ID,
		"first_name": claims.FirstName,
		"last_name":  claims.LastName,
		"email":      claims.Email,
		"role_id":    claims.RoleID,
	})
}

// CheckUserInfo 检查当前用户的资料是否填写完整
// @Summary      检查资料完整度
// @Description  返回资料缺失标记与用户名字
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "令牌"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /check-userinfo [post]
func (c *JWTController) CheckUserInfo() {
	var req TokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	claims, ok := authorize(c.Ctx, c.Container, req.Token)
	if !ok {
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	status, err := userService.CheckUserInfo(claims.ID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, status)
}

// HandleJWTFunc 返回一个处理认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "auth":
			controller.Auth()
		case "userInfo":
			controller.UserInfo()
		case "checkUserInfo":
			controller.CheckUserInfo()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
