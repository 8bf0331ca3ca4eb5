package ingredient

import (
	"context"
	"errors"
	"strings"
	"time"

	"mood-recipe-api/internal/core/ai/provider"
	"mood-recipe-api/internal/pkg/common"

	"go.uber.org/zap"
)

const audioExtractionPrompt = `Listen to this audio recording and extract all food ingredients mentioned.
The speaker is listing ingredients they have available for cooking.
Return ONLY a comma-separated list of ingredient names in English, lowercase, singular form.
Do not include quantities, units, or any other words.
If no ingredients can be identified, return an empty response.`

// ExtractFromAudio 從音訊錄音擷取食材。音訊路徑沒有字典降級，
// AI 不可用或逾時直接回報錯誤
func (e *Extractor) ExtractFromAudio(ctx context.Context, audio []byte, mimeType string) (*ExtractionResult, error) {
	start := time.Now()

	size := int64(len(audio))
	if size < e.config.Audio.MinSizeBytes {
		return nil, common.ErrAudioTooShort
	}
	if size > e.config.Audio.MaxSizeBytes {
		return nil, common.ErrAudioTooLarge
	}

	// 沒帶 MIME 類型時當作 wav，帶了但不是音訊就直接拒絕
	switch {
	case mimeType == "":
		mimeType = "audio/wav"
	case !strings.HasPrefix(mimeType, "audio/"):
		return nil, common.ErrInvalidAudioType
	}

	if !e.oracle.Healthy() {
		return nil, common.ErrOracleUnavailable
	}

	aiCtx, cancel := context.WithTimeout(ctx, e.config.Gemini.AudioTimeout)
	defer cancel()

	content, err := e.oracle.GenerateAudio(aiCtx, e.config.Gemini.ExtractModel, audioExtractionPrompt, audio, mimeType, provider.Sampling{
		Temperature:     0.1,
		MaxOutputTokens: 500,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || aiCtx.Err() == context.DeadlineExceeded {
			common.LogWarn("音訊擷取超時",
				zap.Int64("audio_size", size),
				zap.Duration("timeout", e.config.Gemini.AudioTimeout),
			)
			return nil, common.WrapError(common.ErrAudioProcessingTimeout, err)
		}
		return nil, common.WrapError(common.ErrAIServiceError, err)
	}

	ingredients := parseIngredientResponse(content, e.config.Ingredient.MaxDetected)
	if len(ingredients) == 0 {
		return nil, common.WrapError(common.ErrAIServiceError, errors.New("no ingredients detected in audio"))
	}

	return &ExtractionResult{
		Ingredients:      ingredients,
		Source:           SourceAudio,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Confidence:       0.9,
	}, nil
}
