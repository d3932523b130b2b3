package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

// ErrInvalidToken 令牌签名或格式校验失败
var ErrInvalidToken = errors.New("Invalid token")

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(user *models.User) (string, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey   string
	issuer      string
	expiryHours int
}

// JWTClaims 定义JWT令牌的声明结构，与旧客户端的载荷字段保持一致
type JWTClaims struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	RoleID    int    `json:"role_id"`
	jwt.RegisteredClaims
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey:   cfg.JWTSecretKey,
		issuer:      "tulayan-http-service",
		expiryHours: cfg.JWTExpiryHours,
	}
}

// GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	claims := &JWTClaims{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		RoleID:    user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   s.issuer,
		},
	}

	// 默认不设置过期时间，保持与旧客户端兼容；JWT_EXPIRY_HOURS > 0 时启用
	if s.expiryHours > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Duration(s.expiryHours) * time.Hour))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ExtractClaims 验证令牌并提取声明；任何失败都视为完全拒绝
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
