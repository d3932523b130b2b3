package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
	"tulayan-http-service/utils"
)

var (
	// ErrFileRequired 请求中没有携带文件
	ErrFileRequired = errors.New("No file was uploaded.")
	// ErrFileTypeNotAllowed 文件扩展名不在白名单中
	ErrFileTypeNotAllowed = errors.New("The file type is not allowed.")
	// ErrFileNotFound 文件不存在
	ErrFileNotFound = errors.New("The file was not found.")
)

// 允许上传的扩展名白名单
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

// InterfaceUploadService defines the file upload service interface
type InterfaceUploadService interface {
	SaveFile(ctx *gin.Context, file *multipart.FileHeader, field string) (string, error)
	AttachReceipt(reservationID uint, filename string) error
	ResolvePath(filename string) (string, error)
}

// UploadService 提供文件上传与存储服务
type UploadService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUploadService 创建一个新的上传服务，保证上传目录存在
func NewUploadService(db *gorm.DB, cfg *config.Config) InterfaceUploadService {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		config.Error("创建上传目录失败: %v", err)
	}
	return &UploadService{
		DB:     db,
		Config: cfg,
	}
}

// 1 SaveFile 保存上传的文件并返回生成的文件名。
// 文件名格式为 {field}-{毫秒时间戳}-{随机数}{扩展名}，
// 字段名经过清洗，扩展名必须在白名单内。
func (s *UploadService) SaveFile(ctx *gin.Context, file *multipart.FileHeader, field string) (string, error) {
	if file == nil {
		return "", ErrFileRequired
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrFileTypeNotAllowed
	}

	filename := fmt.Sprintf("%s-%d-%d%s", sanitizeField(field), time.Now().UnixMilli(), utils.RandomSuffix(), ext)
	dest := filepath.Join(s.Config.UploadDir, filename)

	if err := ctx.SaveUploadedFile(file, dest); err != nil {
		return "", err
	}
	return filename, nil
}

// 2 AttachReceipt 将上传的收据文件名挂到预订记录上。
// 文件先落盘，落盘成功才更新指针。
func (s *UploadService) AttachReceipt(reservationID uint, filename string) error {
	result := s.DB.Model(&models.Reservation{}).
		Where("id = ?", reservationID).
		Update("receipt", filename)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// 3 ResolvePath 将文件名解析为上传目录内的绝对路径。
// 只取basename，杜绝路径穿越。
func (s *UploadService) ResolvePath(filename string) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == "/" || name == "" {
		return "", ErrFileNotFound
	}

	path := filepath.Join(s.Config.UploadDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrFileNotFound
	}
	return path, nil
}

// sanitizeField 只保留字段名中的字母、数字、下划线和连字符
func sanitizeField(field string) string {
	var b strings.Builder
	for _, r := range field {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
