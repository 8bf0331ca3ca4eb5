package recipe

import (
	"encoding/json"
	"fmt"
	"strings"

	"mood-recipe-api/internal/pkg/common"
)

// ParseStatus 解析結果的狀態
type ParseStatus int

const (
	// ParseOK 解析成功且欄位齊全
	ParseOK ParseStatus = iota
	// ParseFailed 回應中找不到可解析的 JSON
	ParseFailed
	// ParseIncomplete JSON 有效但缺少必要欄位
	ParseIncomplete
)

// ParseOutcome 解析 AI 回應的結果。呼叫方依 Status 分支，
// 不必從錯誤字串推斷失敗原因
type ParseOutcome struct {
	Status        ParseStatus
	Recipe        *Record
	Reason        string
	MissingFields []string
}

// rawRecipe AI 回應的中間結構，數值欄位用 json.Number 容忍整數與浮點
type rawRecipe struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Ingredients  []string     `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	PrepTime     json.Number  `json:"prep_time"`
	CookTime     json.Number  `json:"cook_time"`
	TotalTime    json.Number  `json:"total_time"`
	Servings     json.Number  `json:"servings"`
	Difficulty   string       `json:"difficulty"`
	CuisineType  string       `json:"cuisine_type"`
	Nutrition    rawNutrition `json:"nutrition_info"`
	Tags         []string     `json:"tags"`
}

type rawNutrition struct {
	Calories json.Number `json:"calories"`
	Protein  json.Number `json:"protein"`
	Carbs    json.Number `json:"carbs"`
	Fat      json.Number `json:"fat"`
	Fiber    json.Number `json:"fiber"`
	Sugar    json.Number `json:"sugar"`
	Sodium   json.Number `json:"sodium"`
}

// ParseResponse 從 AI 回應中解析食譜。依序嘗試：
// 去除 code fence、抽出最外層 JSON 物件、移除尾逗號、
// 最後退回首個 { 到末個 } 的切片
func ParseResponse(raw string, mood Mood) ParseOutcome {
	cleaned := common.StripCodeFence(raw)

	candidate := cleaned
	if obj, ok := common.ExtractJSONObject(cleaned); ok {
		candidate = obj
	}
	candidate = common.RemoveTrailingCommas(candidate)

	var parsed rawRecipe
	if err := common.ParseJSON(candidate, &parsed); err != nil {
		// 最後一層修復：首個 { 到末個 }
		first := strings.Index(cleaned, "{")
		last := strings.LastIndex(cleaned, "}")
		if first < 0 || last <= first {
			return ParseOutcome{
				Status: ParseFailed,
				Reason: "no JSON object found in response",
			}
		}
		candidate = common.RemoveTrailingCommas(cleaned[first : last+1])
		if err := common.ParseJSON(candidate, &parsed); err != nil {
			return ParseOutcome{
				Status: ParseFailed,
				Reason: fmt.Sprintf("invalid JSON: %v", err),
			}
		}
	}

	var missing []string
	if len(parsed.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(parsed.Instructions) == 0 {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return ParseOutcome{
			Status:        ParseIncomplete,
			Reason:        fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
			MissingFields: missing,
		}
	}

	rec := &Record{
		Title:        stringOr(parsed.Title, "Generated Recipe"),
		Description:  stringOr(parsed.Description, "A delicious recipe"),
		Ingredients:  parsed.Ingredients,
		Instructions: parsed.Instructions,
		PrepTime:     intOr(parsed.PrepTime, 15),
		CookTime:     intOr(parsed.CookTime, 30),
		TotalTime:    intOr(parsed.TotalTime, 45),
		Servings:     intOr(parsed.Servings, 2),
		Difficulty:   stringOr(strings.ToLower(parsed.Difficulty), "medium"),
		CuisineType:  stringOr(parsed.CuisineType, "fusion"),
		Nutrition: NutritionInfo{
			Calories: floatOr(parsed.Nutrition.Calories, 300),
			Protein:  floatOr(parsed.Nutrition.Protein, 15),
			Carbs:    floatOr(parsed.Nutrition.Carbs, 30),
			Fat:      floatOr(parsed.Nutrition.Fat, 10),
			Fiber:    floatOr(parsed.Nutrition.Fiber, 5),
			Sugar:    floatOr(parsed.Nutrition.Sugar, 5),
			Sodium:   floatOr(parsed.Nutrition.Sodium, 400),
		},
		Tags: parsed.Tags,
	}

	if tmpl, ok := moodMessages[mood]; ok {
		rec.MoodMessage = fmt.Sprintf(tmpl, rec.Title)
	}

	return ParseOutcome{Status: ParseOK, Recipe: rec}
}

func stringOr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func intOr(n json.Number, def int) int {
	if n == "" {
		return def
	}
	if i, err := n.Int64(); err == nil && i > 0 {
		return int(i)
	}
	if f, err := n.Float64(); err == nil && f > 0 {
		return int(f)
	}
	return def
}

func floatOr(n json.Number, def float64) float64 {
	if n == "" {
		return def
	}
	if f, err := n.Float64(); err == nil && f >= 0 {
		return f
	}
	return def
}
