package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Occupation{},
		&models.Unit{},
		&models.Tenant{},
		&models.Particular{},
		&models.Bill{},
		&models.Payment{},
		&models.Reservation{},
	))

	cfg := &config.Config{
		JWTSecretKey: "router-test-secret",
		UploadDir:    t.TempDir(),
		CORSOrigin:   "http://localhost:4200",
		RedisHost:    "localhost",
		RedisPort:    "1", // 不可达，容器降级运行
	}
	return SetupRouter(db, cfg), db
}

// doJSON 发送JSON请求并解析统一响应信封
func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w.Code, envelope
}

func TestPing(t *testing.T) {
	r, _ := setupTestRouter(t)

	status, body := doJSON(t, r, http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body["message"])
}

func TestCORSPreflight(t *testing.T) {
	r, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/units", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestReservationFlow(t *testing.T) {
	r, db := setupTestRouter(t)

	// 注册租户
	status, _ := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"first_name": "Juan",
		"last_name":  "Dela Cruz",
		"email":      "juan@tulayan.com",
		"password":   "secret123",
	})
	require.Equal(t, http.StatusOK, status)

	// 重复邮箱被拒绝
	status, _ = doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"first_name": "Pedro",
		"last_name":  "Reyes",
		"email":      "juan@tulayan.com",
		"password":   "other456",
	})
	require.Equal(t, http.StatusBadRequest, status)

	// 登录拿令牌
	status, body := doJSON(t, r, http.MethodPost, "/api/auth", gin.H{
		"email":    "juan@tulayan.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	token := body["data"].(map[string]interface{})["token"].(string)
	require.NotEmpty(t, token)

	// 错误密码
	status, _ = doJSON(t, r, http.MethodPost, "/api/auth", gin.H{
		"email":    "juan@tulayan.com",
		"password": "wrongpass",
	})
	require.Equal(t, http.StatusBadRequest, status)

	// 令牌解码
	status, body = doJSON(t, r, http.MethodPost, "/api/userinfo", gin.H{"token": token})
	require.Equal(t, http.StatusOK, status)
	claims := body["data"].(map[string]interface{})
	assert.Equal(t, "Juan", claims["first_name"])
	assert.Equal(t, float64(models.RoleTenant), claims["role_id"])

	// 建单元
	status, body = doJSON(t, r, http.MethodPost, "/api/units", gin.H{
		"desc":  "Unit 1A",
		"image": "unit-1a.jpg",
	})
	require.Equal(t, http.StatusOK, status)
	unitID := body["data"].(map[string]interface{})["id"].(float64)

	// 租户可以看到空闲单元
	status, body = doJSON(t, r, http.MethodPost, "/api/units-available", gin.H{"token": token})
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["data"], 1)

	// 预订
	status, body = doJSON(t, r, http.MethodPost, "/api/reservations", gin.H{
		"token":   token,
		"unit_id": unitID,
	})
	require.Equal(t, http.StatusOK, status)
	reservationID := body["data"].(map[string]interface{})["id"].(float64)

	// 预订后对自己不可见
	status, body = doJSON(t, r, http.MethodPost, "/api/units-available", gin.H{"token": token})
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])

	// 租户不能访问管理员接口
	status, _ = doJSON(t, r, http.MethodPost, "/api/reservation-requests", gin.H{"token": token})
	require.Equal(t, http.StatusBadRequest, status)

	// 建管理员并登录
	admin := models.User{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     "admin@tulayan.com",
		Password:  "admin123",
		RoleID:    models.RoleAdmin,
	}
	require.NoError(t, db.Create(&admin).Error)

	status, body = doJSON(t, r, http.MethodPost, "/api/auth", gin.H{
		"email":    "admin@tulayan.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, status)
	adminToken := body["data"].(map[string]interface{})["token"].(string)

	// 管理员能看到预订请求
	status, body = doJSON(t, r, http.MethodPost, "/api/reservation-requests", gin.H{"token": adminToken})
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["data"], 1)

	// 未读通知徽标
	status, body = doJSON(t, r, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["count"])

	// 审批通过
	status, _ = doJSON(t, r, http.MethodPost, "/api/approve-reservation", gin.H{
		"token": adminToken,
		"id":    reservationID,
	})
	require.Equal(t, http.StatusOK, status)

	// 生成入住记录
	status, body = doJSON(t, r, http.MethodGet, "/api/tenants", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["data"], 1)

	// 已通过的预订不能再取消
	status, _ = doJSON(t, r, http.MethodPost, "/api/my-reservations/cancel", gin.H{
		"token": token,
		"id":    reservationID,
	})
	require.Equal(t, http.StatusBadRequest, status)

	// 伪造令牌被拒绝
	status, _ = doJSON(t, r, http.MethodPost, "/api/my-reservations", gin.H{"token": token + "x"})
	require.Equal(t, http.StatusBadRequest, status)
}

func TestUnitNotFoundResponses(t *testing.T) {
	r, _ := setupTestRouter(t)

	status, body := doJSON(t, r, http.MethodGet, "/api/units/999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "The unit with the given ID was not found.", body["message"])

	status, _ = doJSON(t, r, http.MethodPut, "/api/units/999", gin.H{"desc": "x"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, r, http.MethodGet, "/api/particulars/999", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
