package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/code"
	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/models"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"100004"`
	Message string      `json:"message" example:"Invalid token"`
	Data    interface{} `json:"data"`
}

// authorize 校验请求体携带的令牌，失败时写出错误响应
func authorize(ctx *gin.Context, c *container.ServiceContainer, token string) (*services.JWTClaims, bool) {
	jwtService := c.GetService("jwt").(services.InterfaceJWTService)
	claims, err := jwtService.ExtractClaims(token)
	if err != nil {
		response.Fail(ctx, code.ErrTokenInvalid, nil)
		return nil, false
	}
	return claims, true
}

// authorizeAdmin 校验令牌并要求管理员角色
func authorizeAdmin(ctx *gin.Context, c *container.ServiceContainer, token string) (*services.JWTClaims, bool) {
	claims, ok := authorize(ctx, c, token)
	if !ok {
		return nil, false
	}
	if claims.RoleID != models.RoleAdmin {
		response.FailWithMessage(ctx, code.ErrUnauthorized, "Unauthorized Access", nil)
		return nil, false
	}
	return claims, true
}

// parseIDParam 解析路径中的ID参数
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		response.ParamError(ctx, "无效的ID参数")
		return 0, false
	}
	return uint(id), true
}

// serviceErrorCodes 服务层哨兵错误到业务错误码的映射
var serviceErrorCodes = []struct {
	err  error
	code int
}{
	{services.ErrUserNotFound, code.ErrUserNotFound},
	{services.ErrEmailAlreadyExist, code.ErrEmailAlreadyExist},
	{services.ErrInvalidCredentials, code.ErrInvalidCredentials},
	{services.ErrUnitNotFound, code.ErrUnitNotFound},
	{services.ErrTenantNotFound, code.ErrTenantNotFound},
	{services.ErrBillNotFound, code.ErrBillNotFound},
	{services.ErrPaymentNotFound, code.ErrPaymentNotFound},
	{services.ErrReservationNotFound, code.ErrReservationNotFound},
	{services.ErrReservationFinalized, code.ErrReservationFinalized},
	{services.ErrParticularNotFound, code.ErrParticularNotFound},
	{services.ErrOccupationNotFound, code.ErrOccupationNotFound},
	{services.ErrFileRequired, code.ErrFileRequired},
	{services.ErrFileTypeNotAllowed, code.ErrFileTypeNotAllowed},
	{services.ErrFileNotFound, code.ErrFileNotFound},
	{services.ErrInvalidToken, code.ErrTokenInvalid},
}

// failFromError 根据服务层错误写出响应；未识别的错误一律按服务器错误处理
func failFromError(ctx *gin.Context, err error) {
	for _, entry := range serviceErrorCodes {
		if errors.Is(err, entry.err) {
			response.FailWithMessage(ctx, entry.code, err.Error(), nil)
			return
		}
	}
	response.ServerError(ctx)
}
