package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceUserController 定义用户控制器接口
type InterfaceUserController interface {
	Register()
	GetUsers()
	GetUnreservedUsers()
	ResetPassword()
	UpdateUserInfo()
}

// UserController 处理用户相关的请求
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required" example:"Juan"`
	LastName  string `json:"last_name" binding:"required" example:"Dela Cruz"`
	Email     string `json:"email" binding:"required,email" example:"juan@tulayan.com"`
	Contact   string `json:"contact" example:"09171234567"`
	Password  string `json:"password" binding:"required,min=6" example:"secret123"`
}

// ResetPasswordRequest 表示管理员重置密码请求
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register 注册新用户
// @Summary      注册用户
// @Description  创建新的租户账号，邮箱必须唯一
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /users [post]
func (c *UserController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Register(req.FirstName, req.LastName, req.Email, req.Contact, req.Password)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

// GetUsers 获取所有用户
// @Summary      获取用户列表
// @Description  返回所有用户及其职业描述
// @Tags         User
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (c *UserController) GetUsers() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, err := userService.GetAllUsers()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, users)
}

// GetUnreservedUsers 获取没有入住记录的用户
// @Summary      获取未入住用户
// @Description  返回可以被登记为租户的用户简要列表
// @Tags         User
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /users-unreserved [get]
func (c *UserController) GetUnreservedUsers() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, err := userService.GetUnreservedUsers()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, users)
}

// ResetPassword 管理员重置指定用户的密码
// @Summary      重置密码
// @Description  仅管理员可重置任意用户的密码
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body ResetPasswordRequest true "令牌与新密码"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [put]
func (c *UserController) ResetPassword() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req ResetPasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := authorizeAdmin(c.Ctx, c.Container, req.Token); !ok {
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.UpdatePassword(id, req.Password); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "Successfully Updated"})
}

// UpdateUserInfo 更新当前用户的资料（multipart，含头像上传）
// @Summary      更新用户资料
// @Description  上传头像并更新地址、出生日期与职业
// @Tags         User
// @Accept       multipart/form-data
// @Produce      json
// @Param        token formData string true "令牌"
// @Param        address formData string true "地址"
// @Param        birth_date formData string true "出生日期 YYYY-MM-DD"
// @Param        occupation formData int true "职业ID"
// @Param        photo formData file true "头像文件"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /update-userinfo [put]
func (c *UserController) UpdateUserInfo() {
	var form struct {
		Token      string `form:"token" binding:"required"`
		Address    string `form:"address" binding:"required"`
		BirthDate  string `form:"birth_date" binding:"required"`
		Occupation uint   `form:"occupation" binding:"required"`
	}
	if err := c.Ctx.ShouldBind(&form); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	claims, ok := authorize(c.Ctx, c.Container, form.Token)
	if !ok {
		return
	}

	file, err := c.Ctx.FormFile("photo")
	if err != nil {
		failFromError(c.Ctx, services.ErrFileRequired)
		return
	}

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	filename, err := uploadService.SaveFile(c.Ctx, file, "photo")
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.UpdateUserInfo(claims.ID, form.Address, form.BirthDate, form.Occupation, filename); err != nil {
		failFromError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"filename": filename,
		"user_id":  claims.ID,
	})
}

// HandleUserFunc 返回一个处理用户请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "getUsers":
			controller.GetUsers()
		case "getUnreservedUsers":
			controller.GetUnreservedUsers()
		case "resetPassword":
			controller.ResetPassword()
		case "updateUserInfo":
			controller.UpdateUserInfo()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
