package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/response"
	"tulayan-http-service/services"
	"tulayan-http-service/services/container"
)

// InterfaceUploadController 定义上传控制器接口
type InterfaceUploadController interface {
	UploadReceipt()
	ServeFile()
}

// UploadController 处理文件上传与下载请求
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController 创建一个新的上传控制器
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// UploadReceipt 上传付款收据并挂到预订记录
// @Summary      上传收据
// @Description  保存收据文件并更新对应预订的收据指针
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        reservation_id formData int true "预订ID"
// @Param        receipt formData file true "收据文件"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /upload [post]
func (c *UploadController) UploadReceipt() {
	reservationID, err := strconv.ParseUint(c.Ctx.PostForm("reservation_id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的预订ID")
		return
	}

	file, err := c.Ctx.FormFile("receipt")
	if err != nil {
		failFromError(c.Ctx, services.ErrFileRequired)
		return
	}

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	filename, err := uploadService.SaveFile(c.Ctx, file, "receipt")
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}

	if err := uploadService.AttachReceipt(uint(reservationID), filename); err != nil {
		failFromError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"filename":       filename,
		"reservation_id": uint(reservationID),
	})
}

// ServeFile 返回上传目录中的文件
// @Summary      下载上传文件
// @Tags         Upload
// @Produce      octet-stream
// @Param        filename path string true "文件名"
// @Success      200  {file}  file
// @Failure      404  {object}  ErrorResponse
// @Router       /uploads/{filename} [get]
func (c *UploadController) ServeFile() {
	filename := c.Ctx.Param("filename")

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	path, err := uploadService.ResolvePath(filename)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}

	c.Ctx.Header("Content-Disposition", "inline")
	c.Ctx.File(path)
}

// HandleUploadFunc 返回一个处理上传请求的Gin处理函数
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "uploadReceipt":
			controller.UploadReceipt()
		case "serveFile":
			controller.ServeFile()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}
