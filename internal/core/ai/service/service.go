package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"mood-recipe-api/internal/core/ai/cache"
	"mood-recipe-api/internal/core/ai/provider"
	"mood-recipe-api/internal/core/ai/queue"
	"mood-recipe-api/internal/infrastructure/config"
	"mood-recipe-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Service AI 服務：統一快取、額度計數與隊列派送
type Service struct {
	config       *config.Config
	queueManager *queue.Manager
	cacheManager *cache.Manager
	redisCache   *cache.Service

	mu         sync.Mutex
	usageCount int64
	healthy    bool
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, p provider.Provider, cacheManager *cache.Manager, redisCache *cache.Service) *Service {
	return &Service{
		config:       cfg,
		queueManager: queue.NewManager(cfg, p),
		cacheManager: cacheManager,
		redisCache:   redisCache,
	}
}

// Init 在啟動時探測 AI 服務是否可用。探測失敗不會中止啟動，
// 只會讓需要 AI 的路徑回報服務不可用、可降級的路徑走字典比對
func (s *Service) Init(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := s.queueManager.Dispatch(probeCtx, &provider.Request{
		Model:  s.config.Gemini.ExtractModel,
		Prompt: "Say OK",
		Sampling: provider.Sampling{
			Temperature:     0,
			MaxOutputTokens: 8,
		},
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || resp == nil || strings.TrimSpace(resp.Content) == "" {
		s.healthy = false
		common.LogError("AI 服務探測失敗，生成功能將不可用",
			zap.Error(err),
			zap.String("model", s.config.Gemini.ExtractModel),
		)
		return common.WrapError(common.ErrOracleUnavailable, err)
	}

	s.healthy = true
	common.LogInfo("AI 服務探測成功",
		zap.String("model", s.config.Gemini.ExtractModel),
	)
	return nil
}

// Healthy 回報 AI 服務是否在啟動時成功初始化
func (s *Service) Healthy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.healthy
}

// QuotaExceeded 檢查是否已超過每月呼叫額度
func (s *Service) QuotaExceeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.Gemini.MonthlyLimit > 0 && s.usageCount >= s.config.Gemini.MonthlyLimit
}

// recordUsage 成功呼叫後遞增額度計數
func (s *Service) recordUsage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usageCount++
	if s.config.Gemini.MonthlyLimit > 0 && s.usageCount >= s.config.Gemini.MonthlyLimit {
		common.LogWarn("AI 服務額度已達上限",
			zap.Int64("usage", s.usageCount),
			zap.Int64("limit", s.config.Gemini.MonthlyLimit),
		)
	}
}

// ResetMonthlyUsage 重設每月額度計數（每月初由外部排程呼叫）
func (s *Service) ResetMonthlyUsage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usageCount = 0
	common.LogInfo("每月 AI 額度計數已重設")
}

// UsageStats 獲取額度使用統計
func (s *Service) UsageStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.config.Gemini.MonthlyLimit - s.usageCount
	if remaining < 0 {
		remaining = 0
	}
	return map[string]interface{}{
		"ai_available":  s.healthy,
		"monthly_usage": s.usageCount,
		"monthly_limit": s.config.Gemini.MonthlyLimit,
		"remaining":     remaining,
	}
}

// QueueStatus 獲取隊列狀態
func (s *Service) QueueStatus() *queue.Status {
	return s.queueManager.GetStatus()
}

// GenerateText 發送純文字請求
func (s *Service) GenerateText(ctx context.Context, model, prompt string, sampling provider.Sampling) (string, error) {
	return s.generate(ctx, &provider.Request{
		Model:    model,
		Prompt:   prompt,
		Sampling: sampling,
	}, true)
}

// GenerateTextNoCache 發送純文字請求並繞過回應快取。
// 重試迴圈需要對同一提示詞重新取樣，上一次的失敗回應
// 不能從快取被重播，回應也不寫入快取
func (s *Service) GenerateTextNoCache(ctx context.Context, model, prompt string, sampling provider.Sampling) (string, error) {
	return s.generate(ctx, &provider.Request{
		Model:    model,
		Prompt:   prompt,
		Sampling: sampling,
	}, false)
}

// GenerateAudio 發送文字加音訊的多模態請求
func (s *Service) GenerateAudio(ctx context.Context, model, prompt string, audio []byte, mimeType string, sampling provider.Sampling) (string, error) {
	return s.generate(ctx, &provider.Request{
		Model:  model,
		Prompt: prompt,
		Audio: &provider.AudioInput{
			MimeType: mimeType,
			Data:     audio,
		},
		Sampling: sampling,
	}, true)
}

// generate 檢查快取、派送隊列、回填快取。
// useCache 為 false 時完全不碰快取，每次都打到 provider
func (s *Service) generate(ctx context.Context, req *provider.Request, useCache bool) (string, error) {
	useCache = useCache && s.config.Cache.Enabled

	var key string
	if useCache {
		var audioData []byte
		if req.Audio != nil {
			audioData = req.Audio.Data
		}
		key = cache.Key(req.Prompt, audioData)

		// 先查記憶體快取，再查 Redis
		if val, err := s.cacheManager.Get(ctx, key); err == nil && val != "" {
			return val, nil
		}
		if val, err := s.redisCache.Get(ctx, key); err == nil && val != "" {
			common.LogCacheHit("redis", key)
			// 回填記憶體快取
			_ = s.cacheManager.Set(ctx, key, val)
			return val, nil
		}
	}

	// 快取沒有答案才消耗額度
	if s.QuotaExceeded() {
		return "", common.ErrQuotaExceeded
	}

	start := time.Now()
	resp, err := s.queueManager.Dispatch(ctx, req)
	common.LogAICall(req.Prompt, time.Since(start), err, "")
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Content == "" {
		return "", common.WrapError(common.ErrAIServiceError, nil)
	}

	s.recordUsage()

	if useCache {
		_ = s.cacheManager.Set(ctx, key, resp.Content)
		_ = s.redisCache.Set(ctx, key, resp.Content)
	}

	return resp.Content, nil
}

// Close 關閉 AI 服務
func (s *Service) Close() {
	s.queueManager.Close()
}
