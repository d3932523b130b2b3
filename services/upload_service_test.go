package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// multipartContext 构造携带单个文件的multipart请求上下文
func multipartContext(t *testing.T, field, filename string) (*gin.Context, *multipart.FileHeader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("file-content"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = req

	file, err := ctx.FormFile(field)
	require.NoError(t, err)
	return ctx, file
}

func uploadConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{UploadDir: t.TempDir()}
}

func TestSaveFileGeneratesSafeName(t *testing.T) {
	cfg := uploadConfig(t)
	svc := NewUploadService(setupTestDB(t), cfg)

	ctx, file := multipartContext(t, "receipt", "gcash-receipt.png")
	filename, err := svc.SaveFile(ctx, file, "receipt")
	require.NoError(t, err)

	// 文件名格式: {field}-{时间戳}-{随机数}{扩展名}
	assert.Regexp(t, regexp.MustCompile(`^receipt-\d+-\d+\.png$`), filename)

	_, err = os.Stat(filepath.Join(cfg.UploadDir, filename))
	assert.NoError(t, err)
}

func TestSaveFileRejectsDisallowedExtension(t *testing.T) {
	cfg := uploadConfig(t)
	svc := NewUploadService(setupTestDB(t), cfg)

	ctx, file := multipartContext(t, "receipt", "malware.exe")
	_, err := svc.SaveFile(ctx, file, "receipt")
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
}

func TestSaveFileSanitizesFieldName(t *testing.T) {
	cfg := uploadConfig(t)
	svc := NewUploadService(setupTestDB(t), cfg)

	ctx, file := multipartContext(t, "receipt", "receipt.jpg")
	filename, err := svc.SaveFile(ctx, file, "../../etc/passwd")
	require.NoError(t, err)

	// 路径字符被清洗掉，文件仍落在上传目录内
	assert.NotContains(t, filename, "/")
	assert.NotContains(t, filename, "..")
	_, err = os.Stat(filepath.Join(cfg.UploadDir, filename))
	assert.NoError(t, err)
}

func TestResolvePathBlocksTraversal(t *testing.T) {
	cfg := uploadConfig(t)
	svc := NewUploadService(setupTestDB(t), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.UploadDir, "receipt-1-1.png"), []byte("x"), 0644))

	path, err := svc.ResolvePath("receipt-1-1.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.UploadDir, "receipt-1-1.png"), path)

	// 穿越路径被剥成basename，找不到就报错
	_, err = svc.ResolvePath("../../etc/passwd")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = svc.ResolvePath("missing.png")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestAttachReceipt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUploadService(db, uploadConfig(t))
	reservations := NewReservationService(db, testConfig(), nil)

	user := seedUser(t, db, "a@t.com")
	unit := seedUnit(t, db, "Unit 1A")
	reservation, err := reservations.CreateReservation(user.ID, unit.ID)
	require.NoError(t, err)

	require.NoError(t, svc.AttachReceipt(reservation.ID, "receipt-1-1.png"))

	var updated models.Reservation
	require.NoError(t, db.First(&updated, reservation.ID).Error)
	require.NotNil(t, updated.Receipt)
	assert.Equal(t, "receipt-1-1.png", *updated.Receipt)

	assert.ErrorIs(t, svc.AttachReceipt(9999, "x.png"), ErrReservationNotFound)
}
