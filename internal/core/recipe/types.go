package recipe

import (
	"fmt"
	"time"
)

// Mood 使用者當下的心情，影響食譜的風格與調性
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodEnergetic Mood = "energetic"
	MoodTired     Mood = "tired"
	MoodStressed  Mood = "stressed"
	MoodCalm      Mood = "calm"
	MoodExcited   Mood = "excited"
	MoodBored     Mood = "bored"
)

// AllMoods 所有支援的心情，順序固定
var AllMoods = []Mood{
	MoodHappy, MoodSad, MoodEnergetic, MoodTired,
	MoodStressed, MoodCalm, MoodExcited, MoodBored,
}

// ParseMood 驗證心情字串
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	for _, known := range AllMoods {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mood %q", s)
}

// NutritionInfo 每份的營養估計值
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// GenerationRequest 食譜生成請求
type GenerationRequest struct {
	Ingredients        []string `json:"ingredients"`
	Mood               Mood     `json:"mood"`
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	HealthGoals        []string `json:"health_goals,omitempty"`
	CuisinePreference  string   `json:"cuisine_preference,omitempty"`
	Servings           int      `json:"servings,omitempty"`
}

// Record 一份完整的食譜
type Record struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Ingredients  []string      `json:"ingredients"`
	Instructions []string      `json:"instructions"`
	PrepTime     int           `json:"prep_time"`
	CookTime     int           `json:"cook_time"`
	TotalTime    int           `json:"total_time"`
	Servings     int           `json:"servings"`
	Difficulty   string        `json:"difficulty"`
	CuisineType  string        `json:"cuisine_type"`
	Nutrition    NutritionInfo `json:"nutrition_info"`
	Tags         []string      `json:"tags"`
	MoodMessage  string        `json:"mood_message,omitempty"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
