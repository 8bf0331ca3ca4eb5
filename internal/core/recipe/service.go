package recipe

import (
	"context"
	"errors"
	"strings"
	"time"

	"mood-recipe-api/internal/core/ai/provider"
	"mood-recipe-api/internal/infrastructure/config"
	"mood-recipe-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Oracle 食譜生成所需的 AI 能力。生成走不經快取的路徑，
// 重試的意義在於重新取樣，快取住的失敗回應會讓每次重試拿到同一份垃圾
type Oracle interface {
	Healthy() bool
	GenerateTextNoCache(ctx context.Context, model, prompt string, sampling provider.Sampling) (string, error)
}

// Service 食譜生成服務
type Service struct {
	config *config.Config
	oracle Oracle
}

// NewService 創建食譜生成服務
func NewService(cfg *config.Config, oracle Oracle) *Service {
	return &Service{
		config: cfg,
		oracle: oracle,
	}
}

// 食譜生成用的取樣參數
var recipeSampling = provider.Sampling{
	Temperature: 0.7,
	TopP:        0.8,
	TopK:        40,
}

// Generate 生成一份符合心情的食譜。提示詞只組一次，
// 解析失敗或回應不完整時以固定間隔重試，重試耗盡後回報失敗
func (s *Service) Generate(ctx context.Context, req *GenerationRequest) (*Record, error) {
	if len(req.Ingredients) == 0 {
		return nil, common.ErrNoIngredients
	}
	if !s.oracle.Healthy() {
		return nil, common.ErrOracleUnavailable
	}

	// 補預設值時不改動呼叫方的請求
	r := *req
	if r.Servings < 1 {
		r.Servings = s.config.Recipe.DefaultServings
	}

	prompt := BuildPrompt(&r)
	sampling := recipeSampling
	sampling.MaxOutputTokens = s.config.Gemini.MaxTokens

	var lastFailure string
	for attempt := 1; attempt <= s.config.Recipe.MaxRetries; attempt++ {
		rec, reason := s.attempt(ctx, prompt, r.Mood, sampling)
		if rec != nil {
			rec.GeneratedAt = time.Now()
			common.LogInfo("食譜生成成功",
				zap.String("title", rec.Title),
				zap.String("mood", string(r.Mood)),
				zap.Int("attempt", attempt),
			)
			return rec, nil
		}

		lastFailure = reason
		common.LogWarn("食譜生成嘗試失敗",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", s.config.Recipe.MaxRetries),
			zap.String("reason", reason),
		)

		if attempt < s.config.Recipe.MaxRetries {
			select {
			case <-time.After(s.config.Recipe.RetryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, common.WrapError(common.ErrRecipeGenerationFailed, errors.New(lastFailure))
}

// attempt 單次生成嘗試，失敗時回傳原因描述
func (s *Service) attempt(ctx context.Context, prompt string, mood Mood, sampling provider.Sampling) (*Record, string) {
	content, err := s.oracle.GenerateTextNoCache(ctx, s.config.Gemini.Model, prompt, sampling)
	if err != nil {
		return nil, "ai call failed: " + err.Error()
	}
	if strings.TrimSpace(content) == "" {
		return nil, "empty response"
	}

	outcome := ParseResponse(content, mood)
	switch outcome.Status {
	case ParseOK:
		return outcome.Recipe, ""
	case ParseIncomplete:
		return nil, "incomplete recipe: " + outcome.Reason
	default:
		return nil, "parse failed: " + outcome.Reason
	}
}
