package ingredient

import (
	"context"

	"mood-recipe-api/internal/core/ai/provider"
)

// Source 擷取結果的來源
type Source string

const (
	SourceText  Source = "text"
	SourceAudio Source = "audio"
)

// ExtractionResult 一次食材擷取的結果，處理時間以毫秒回報
type ExtractionResult struct {
	Ingredients      []string `json:"ingredients"`
	Source           Source   `json:"source"`
	Transcription    string   `json:"transcription,omitempty"`
	ProcessingTimeMS int64    `json:"processing_time_ms"`
	Confidence       float64  `json:"confidence"`
}

// ValidationResult 食材驗證結果，Suggestions 記錄被改寫的輸入
type ValidationResult struct {
	ValidatedIngredients []string          `json:"validated_ingredients"`
	Suggestions          map[string]string `json:"suggestions"`
}

// Oracle 擷取所需的 AI 能力
type Oracle interface {
	Healthy() bool
	QuotaExceeded() bool
	GenerateText(ctx context.Context, model, prompt string, sampling provider.Sampling) (string, error)
	GenerateAudio(ctx context.Context, model, prompt string, audio []byte, mimeType string, sampling provider.Sampling) (string, error)
}
