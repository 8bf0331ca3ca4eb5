package cache

import (
	"context"
	"fmt"

	"mood-recipe-api/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// Service Redis 緩存服務，作為記憶體快取之後的第二層
type Service struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewService 創建緩存服務，Redis 未啟用時回傳只做 no-op 的實例
func NewService(cfg *config.CacheConfig) (*Service, error) {
	if !cfg.Enabled || !cfg.RedisEnabled {
		return &Service{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Service{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("redis cache is disabled")
	}

	data, err := s.client.Get(ctx, "ai:response:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("cache miss")
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	return data, nil
}

// Set 設置緩存
func (s *Service) Set(ctx context.Context, key, value string) error {
	if s == nil || s.client == nil {
		return nil
	}

	if err := s.client.Set(ctx, "ai:response:"+key, value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// Close 關閉 Redis 連接
func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
