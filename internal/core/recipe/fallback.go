package recipe

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// FallbackRecipe 在不呼叫 AI 的情況下組出一份可用的食譜。
// 除了生成時間外，內容只由食材與心情決定
func FallbackRecipe(ingredients []string, mood Mood) *Record {
	main := "Mixed Ingredients"
	if len(ingredients) > 0 {
		main = titleCase(ingredients[0])
	}

	title := fmt.Sprintf("%s %s Dish", moodTitles[mood], main)

	featured := ingredients
	if len(featured) > 3 {
		featured = featured[:3]
	}

	recipeIngredients := make([]string, 0, len(ingredients)+2)
	for _, ing := range ingredients {
		recipeIngredients = append(recipeIngredients, fmt.Sprintf("%s (as needed)", ing))
	}
	recipeIngredients = append(recipeIngredients, "salt and pepper to taste", "cooking oil (1-2 tbsp)")

	rec := &Record{
		Title:       title,
		Description: fmt.Sprintf("A simple dish featuring %s, made for your %s mood.", strings.Join(featured, ", "), mood),
		Ingredients: recipeIngredients,
		Instructions: []string{
			"Wash and prepare all ingredients.",
			"Heat oil in a pan over medium heat.",
			"Add the main ingredients and cook until tender.",
			"Season with salt and pepper to taste.",
			"Serve warm and enjoy.",
		},
		PrepTime:    10,
		CookTime:    20,
		TotalTime:   30,
		Servings:    2,
		Difficulty:  "easy",
		CuisineType: "home-style",
		Nutrition: NutritionInfo{
			Calories: 250,
			Protein:  12,
			Carbs:    25,
			Fat:      10,
			Fiber:    4,
			Sugar:    6,
			Sodium:   400,
		},
		Tags:        []string{string(mood), "simple", "homemade"},
		GeneratedAt: time.Now(),
	}

	if tmpl, ok := moodMessages[mood]; ok {
		rec.MoodMessage = fmt.Sprintf(tmpl, rec.Title)
	}

	return rec
}

// titleCase 將每個單詞的首字母大寫
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
