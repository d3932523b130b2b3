package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"tulayan-http-service/internal/error/code"
	"tulayan-http-service/internal/error/response"
)

// 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64    // 每秒填充的令牌数
	capacity   int        // 桶的容量
	tokens     float64    // 当前令牌数
	lastRefill time.Time  // 上次填充时间
	mu         sync.Mutex // 互斥锁
}

// 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	// 填充令牌
	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Rate       float64       // 每秒允许的请求数
	Burst      int           // 允许的突发请求数
	ExpiryTime time.Duration // 限流器过期时间
}

// DefaultRateLimiterConfig 默认限流器配置
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       10,
	Burst:      20,
	ExpiryTime: 1 * time.Hour,
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.RWMutex
)

// 获取IP限流器
func getIPLimiter(ip string, cfg RateLimiterConfig) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()

		// 设置过期时间
		if cfg.ExpiryTime > 0 {
			go func() {
				time.Sleep(cfg.ExpiryTime)
				ipLimitersMu.Lock()
				delete(ipLimiters, ip)
				ipLimitersMu.Unlock()
			}()
		}
	}

	return limiter
}

// RateLimiter 按客户端IP限流的中间件
func RateLimiter(cfg RateLimiterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getIPLimiter(c.ClientIP(), cfg)
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
