package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"tulayan-http-service/config"
)

// unread badge cache
const (
	unreadCountKey = "notifications:unread_count"
	unreadCountTTL = 30 * time.Second
)

// InterfaceRedisService defines the Redis cache interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheUnreadCount(count int64) error
	GetUnreadCount() (int64, error)
	InvalidateUnreadCount() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheUnreadCount caches the unread notification badge counter
func (s *RedisService) CacheUnreadCount(count int64) error {
	return s.Client.Set(s.Ctx, unreadCountKey, strconv.FormatInt(count, 10), unreadCountTTL).Err()
}

// GetUnreadCount gets the cached badge counter; redis.Nil on a cache miss
func (s *RedisService) GetUnreadCount() (int64, error) {
	val, err := s.Client.Get(s.Ctx, unreadCountKey).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// InvalidateUnreadCount drops the cached counter after any reservation mutation
func (s *RedisService) InvalidateUnreadCount() error {
	return s.Client.Del(s.Ctx, unreadCountKey).Err()
}
