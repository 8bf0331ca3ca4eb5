package provider

import (
	"context"
	"time"
)

// Sampling 模型取樣參數
type Sampling struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"top_p,omitempty"`
	TopK            int     `json:"top_k,omitempty"`
	MaxOutputTokens int     `json:"max_output_tokens"`
}

// AudioInput 音訊輸入（原始位元組與宣告的 MIME 類型）
type AudioInput struct {
	MimeType string
	Data     []byte
}

// Request 表示發送到 AI 提供者的請求
type Request struct {
	Model    string
	Prompt   string
	Audio    *AudioInput // 可為 nil，純文字請求
	Sampling Sampling
}

// Response 表示從 AI 提供者收到的響應
type Response struct {
	Content  string `json:"content"`
	CacheHit bool   `json:"cache_hit,omitempty"`
	Usage    struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Provider 定義 AI 提供者介面
type Provider interface {
	// Generate 生成 AI 響應
	Generate(ctx context.Context, req *Request) (*Response, error)

	// GetModel 獲取預設模型名稱
	GetModel() string

	// GetTimeout 獲取請求超時時間
	GetTimeout() time.Duration

	// Close 關閉提供者連接
	Close() error
}
