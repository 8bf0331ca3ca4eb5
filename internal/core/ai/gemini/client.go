package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mood-recipe-api/internal/core/ai/provider"
	"mood-recipe-api/internal/infrastructure/config"
	"mood-recipe-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client Gemini API 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// generateRequest Gemini generateContent 請求結構
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64 編碼
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// generateResponse Gemini generateContent 響應結構
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewClient 創建 Gemini 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", cfg.Gemini.APIKey)

	return &Client{
		config: cfg,
		client: client,
	}
}

// Generate 生成回應
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	model := req.Model
	if model == "" {
		model = c.config.Gemini.Model
	}

	parts := []part{{Text: req.Prompt}}
	if req.Audio != nil {
		parts = append(parts, part{
			InlineData: &inlineData{
				MimeType: req.Audio.MimeType,
				Data:     base64.StdEncoding.EncodeToString(req.Audio.Data),
			},
		})
	}

	body := &generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConfig{
			Temperature:     req.Sampling.Temperature,
			TopP:            req.Sampling.TopP,
			TopK:            req.Sampling.TopK,
			MaxOutputTokens: req.Sampling.MaxOutputTokens,
		},
	}

	common.LogDebug("Sending request to Gemini",
		zap.String("model", model),
		zap.Bool("has_audio", req.Audio != nil),
		zap.Int("prompt_length", len(req.Prompt)),
	)

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(fmt.Sprintf("/models/%s:generateContent", model))
	if err != nil {
		common.LogError("Failed to send request to AI service",
			zap.Error(err),
			zap.String("model", model),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var result generateResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		common.LogError("Failed to parse AI service response",
			zap.Error(err),
			zap.String("model", model),
		)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// 檢查 HTTP 狀態碼與 API 錯誤
	if resp.StatusCode() != http.StatusOK {
		msg := resp.Status()
		if result.Error != nil {
			msg = result.Error.Message
		}
		common.LogError("AI service returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", model),
			zap.String("api_error", msg),
		)
		return nil, fmt.Errorf("AI service error (status %d): %s", resp.StatusCode(), msg)
	}

	// 檢查響應內容
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty candidates in response")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if text == "" {
		return nil, fmt.Errorf("empty content in response")
	}

	common.LogInfo("Successfully generated response from AI service",
		zap.String("model", model),
		zap.Int("content_length", len(text)),
		zap.Duration("耗時", time.Since(start)),
	)

	out := &provider.Response{Content: text}
	out.Usage.PromptTokens = result.UsageMetadata.PromptTokenCount
	out.Usage.CompletionTokens = result.UsageMetadata.CandidatesTokenCount
	out.Usage.TotalTokens = result.UsageMetadata.TotalTokenCount
	return out, nil
}

// GetModel 獲取預設模型名稱
func (c *Client) GetModel() string {
	return c.config.Gemini.Model
}

// GetTimeout 獲取請求超時時間
func (c *Client) GetTimeout() time.Duration {
	return c.config.Gemini.AudioTimeout
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
