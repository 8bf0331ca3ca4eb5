package recipe

import (
	"strings"
	"testing"
)

func TestFallbackRecipe(t *testing.T) {
	rec := FallbackRecipe([]string{"sweet potato", "onion"}, MoodTired)

	if rec.Title != "Easy Sweet Potato Dish" {
		t.Errorf("got title %q", rec.Title)
	}
	if len(rec.Ingredients) != 4 {
		t.Errorf("got %d ingredients, want listed items plus staples", len(rec.Ingredients))
	}
	if len(rec.Instructions) == 0 {
		t.Error("fallback recipe has no instructions")
	}
	if rec.Difficulty != "easy" || rec.CuisineType != "home-style" {
		t.Errorf("got difficulty %q cuisine %q", rec.Difficulty, rec.CuisineType)
	}
	if rec.GeneratedAt.IsZero() {
		t.Error("generated_at not stamped")
	}
	if !strings.Contains(rec.MoodMessage, rec.Title) {
		t.Errorf("mood message should reference the title, got %q", rec.MoodMessage)
	}
}

func TestFallbackRecipeTitlesPerMood(t *testing.T) {
	for _, mood := range AllMoods {
		rec := FallbackRecipe([]string{"rice"}, mood)
		if !strings.HasPrefix(rec.Title, moodTitles[mood]) {
			t.Errorf("mood %s: title %q does not start with %q", mood, rec.Title, moodTitles[mood])
		}
	}
}

func TestFallbackRecipeNoIngredients(t *testing.T) {
	rec := FallbackRecipe(nil, MoodHappy)
	if rec.Title != "Cheerful Mixed Ingredients Dish" {
		t.Errorf("got title %q", rec.Title)
	}
	// 只剩萬用調味
	if len(rec.Ingredients) != 2 {
		t.Errorf("got %d ingredients", len(rec.Ingredients))
	}
}
