package ingredient

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"mood-recipe-api/internal/core/ai/provider"
	"mood-recipe-api/internal/infrastructure/config"
	"mood-recipe-api/internal/pkg/common"

	"go.uber.org/zap"
)

// 擷取結果裡要丟棄的常見填充詞
var stopWords = map[string]bool{
	"and": true, "the": true, "some": true, "a": true, "an": true,
	"of": true, "with": true, "or": true, "is": true, "are": true,
}

const textExtractionPrompt = `Extract all food ingredients mentioned in the following text.
Return ONLY a comma-separated list of ingredient names in English, lowercase, singular form.
Do not include quantities, units, or any other words.
If no ingredients are found, return an empty response.

Text: %s`

// Extractor 從文字或音訊擷取食材清單
type Extractor struct {
	config *config.Config
	oracle Oracle
	vocab  *Vocabulary
}

// NewExtractor 創建食材擷取器
func NewExtractor(cfg *config.Config, oracle Oracle, vocab *Vocabulary) *Extractor {
	return &Extractor{
		config: cfg,
		oracle: oracle,
		vocab:  vocab,
	}
}

// ExtractFromText 從自由文字擷取食材。優先走 AI 擷取，
// AI 不可用、額度用盡、逾時或回傳空結果時退回字典掃描
func (e *Extractor) ExtractFromText(ctx context.Context, text string) (*ExtractionResult, error) {
	start := time.Now()

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < 2 {
		return nil, common.ErrInputTooShort
	}

	var ingredients []string
	if e.oracle.Healthy() && !e.oracle.QuotaExceeded() {
		ingredients = e.extractWithAI(ctx, trimmed)
	}

	if len(ingredients) == 0 {
		ingredients = e.scanVocabulary(trimmed)
		common.LogInfo("使用字典比對擷取食材",
			zap.Int("count", len(ingredients)),
		)
	}

	return &ExtractionResult{
		Ingredients:      ingredients,
		Source:           SourceText,
		Transcription:    trimmed,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Confidence:       0.9,
	}, nil
}

// extractWithAI 呼叫 AI 擷取食材，任何失敗都回傳 nil 讓呼叫方降級
func (e *Extractor) extractWithAI(ctx context.Context, text string) []string {
	aiCtx, cancel := context.WithTimeout(ctx, e.config.Gemini.TextTimeout)
	defer cancel()

	prompt := fmt.Sprintf(textExtractionPrompt, text)
	content, err := e.oracle.GenerateText(aiCtx, e.config.Gemini.ExtractModel, prompt, provider.Sampling{
		Temperature:     0.1,
		MaxOutputTokens: 300,
	})
	if err != nil {
		common.LogWarn("AI 食材擷取失敗，改用字典比對",
			zap.Error(err),
		)
		return nil
	}

	return parseIngredientResponse(content, e.config.Ingredient.MaxDetected)
}

// parseIngredientResponse 清理 AI 回應並切出食材名單
func parseIngredientResponse(content string, max int) []string {
	cleaned := strings.ToLower(strings.TrimSpace(content))
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.ReplaceAll(cleaned, "json", "")
	cleaned = strings.ReplaceAll(cleaned, "*", "")

	// 逗號優先，其次換行，最後空白
	var parts []string
	switch {
	case strings.Contains(cleaned, ","):
		parts = strings.Split(cleaned, ",")
	case strings.Contains(cleaned, "\n"):
		parts = strings.Split(cleaned, "\n")
	default:
		parts = strings.Fields(cleaned)
	}

	seen := make(map[string]bool)
	var ingredients []string
	for _, p := range parts {
		token := strings.Trim(strings.TrimSpace(p), "-•.,\"'`")
		token = strings.TrimSpace(token)
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		if stopWords[token] {
			continue
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		ingredients = append(ingredients, token)
		if len(ingredients) >= max {
			break
		}
	}

	return ingredients
}

// scanVocabulary 在文字裡掃描詞彙表的所有表面形式。
// 長的表面形式先比對，結果依在文字中首次出現的位置排序
func (e *Extractor) scanVocabulary(text string) []string {
	lower := strings.ToLower(text)

	type match struct {
		canonical string
		position  int
	}

	seen := make(map[string]bool)
	var matches []match
	for _, ref := range e.vocab.aliasesByLength() {
		if seen[ref.canonical] {
			continue
		}
		if idx := strings.Index(lower, ref.alias); idx >= 0 {
			seen[ref.canonical] = true
			matches = append(matches, match{canonical: ref.canonical, position: idx})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].position < matches[j].position
	})

	max := e.config.Ingredient.MaxDetected
	ingredients := make([]string, 0, len(matches))
	for _, m := range matches {
		ingredients = append(ingredients, m.canonical)
		if len(ingredients) >= max {
			break
		}
	}

	return ingredients
}
