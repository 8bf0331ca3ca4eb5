package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mood-recipe-api/internal/core/ai/cache"
	"mood-recipe-api/internal/core/ai/provider"
	"mood-recipe-api/internal/infrastructure/config"
	"mood-recipe-api/internal/pkg/common"
)

// fakeProvider 回傳固定內容的 provider
type fakeProvider struct {
	content string
	err     error
	calls   int
}

func (f *fakeProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &provider.Response{Content: f.content}, nil
}

func (f *fakeProvider) GetModel() string          { return "fake" }
func (f *fakeProvider) GetTimeout() time.Duration { return time.Second }
func (f *fakeProvider) Close() error              { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			Model:        "test-model",
			ExtractModel: "test-extract-model",
			MonthlyLimit: 2,
		},
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         10,
			TTL:             time.Minute,
			CleanupInterval: time.Minute,
		},
		Queue: config.QueueConfig{
			Workers: 1,
			MaxSize: 10,
		},
	}
}

func newTestService(t *testing.T, cfg *config.Config, p provider.Provider) *Service {
	t.Helper()
	cacheManager := cache.NewManager(cfg)
	redisCache, err := cache.NewService(&cfg.Cache)
	if err != nil {
		t.Fatalf("failed to create redis cache: %v", err)
	}
	s := NewService(cfg, p, cacheManager, redisCache)
	t.Cleanup(func() {
		s.Close()
		cacheManager.Close()
		redisCache.Close()
	})
	return s
}

func TestInitSetsHealthy(t *testing.T) {
	p := &fakeProvider{content: "OK"}
	s := newTestService(t, testConfig(), p)

	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Healthy() {
		t.Error("service should be healthy after successful probe")
	}
}

func TestInitFailureLeavesUnhealthy(t *testing.T) {
	p := &fakeProvider{err: context.DeadlineExceeded}
	s := newTestService(t, testConfig(), p)

	if err := s.Init(context.Background()); err == nil {
		t.Error("expected probe error")
	}
	if s.Healthy() {
		t.Error("service should not be healthy after failed probe")
	}
}

func TestQuotaCounting(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false

	p := &fakeProvider{content: "response"}
	s := newTestService(t, cfg, p)

	if s.QuotaExceeded() {
		t.Fatal("quota should not be exceeded before any call")
	}

	for i := 0; i < int(cfg.Gemini.MonthlyLimit); i++ {
		if _, err := s.GenerateText(context.Background(), "m", "prompt", provider.Sampling{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !s.QuotaExceeded() {
		t.Error("quota should be exceeded at the monthly limit")
	}

	s.ResetMonthlyUsage()
	if s.QuotaExceeded() {
		t.Error("quota should reset")
	}
}

func TestGenerateUsesCache(t *testing.T) {
	p := &fakeProvider{content: "cached answer"}
	s := newTestService(t, testConfig(), p)

	first, err := s.GenerateText(context.Background(), "m", "same prompt", provider.Sampling{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.GenerateText(context.Background(), "m", "same prompt", provider.Sampling{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("cached response differs: %q vs %q", first, second)
	}
	if p.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", p.calls)
	}
}

func TestGenerateTextNoCacheBypassesCache(t *testing.T) {
	cfg := testConfig()
	cfg.Gemini.MonthlyLimit = 100

	// 回應存在但無法解析時，重試必須重新取樣而不是重播快取
	p := &fakeProvider{content: "this is not json at all"}
	s := newTestService(t, cfg, p)

	first, err := s.GenerateTextNoCache(context.Background(), "m", "same prompt", provider.Sampling{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.GenerateTextNoCache(context.Background(), "m", "same prompt", provider.Sampling{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("fake provider is deterministic, got %q vs %q", first, second)
	}
	if p.calls != 2 {
		t.Errorf("expected 2 provider calls, got %d", p.calls)
	}

	// 不經快取的回應也不能寫進快取
	if _, err := s.GenerateText(context.Background(), "m", "same prompt", provider.Sampling{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.calls != 3 {
		t.Errorf("uncached responses leaked into the cache, got %d calls", p.calls)
	}
}

func TestGenerateFailsWhenQuotaExhausted(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false
	cfg.Gemini.MonthlyLimit = 1

	p := &fakeProvider{content: "x"}
	s := newTestService(t, cfg, p)

	if _, err := s.GenerateText(context.Background(), "m", "p", provider.Sampling{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := s.GenerateText(context.Background(), "m", "p2", provider.Sampling{})
	if !errors.Is(err, common.ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}
	if p.calls != 1 {
		t.Errorf("provider should not be reached past the quota, got %d calls", p.calls)
	}
}

func TestUsageStats(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false

	p := &fakeProvider{content: "x"}
	s := newTestService(t, cfg, p)

	if _, err := s.GenerateText(context.Background(), "m", "p", provider.Sampling{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := s.UsageStats()
	if stats["monthly_usage"].(int64) != 1 {
		t.Errorf("got usage %v, want 1", stats["monthly_usage"])
	}
	if stats["remaining"].(int64) != cfg.Gemini.MonthlyLimit-1 {
		t.Errorf("got remaining %v", stats["remaining"])
	}
}
