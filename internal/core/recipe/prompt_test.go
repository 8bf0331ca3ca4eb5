package recipe

import (
	"strings"
	"testing"
)

func TestBuildPromptDeterministic(t *testing.T) {
	req := &GenerationRequest{
		Ingredients:        []string{"tomato", "pasta"},
		Mood:               MoodHappy,
		DietaryPreferences: []string{"vegetarian"},
		Allergies:          []string{"peanuts"},
		HealthGoals:        []string{"high protein"},
		CuisinePreference:  "italian",
		Servings:           4,
	}

	first := BuildPrompt(req)
	second := BuildPrompt(req)
	if first != second {
		t.Error("prompt differs between calls for the same request")
	}
}

func TestBuildPromptContents(t *testing.T) {
	req := &GenerationRequest{
		Ingredients: []string{"tomato", "pasta"},
		Mood:        MoodStressed,
		Allergies:   []string{"shellfish", "peanuts"},
		Servings:    2,
	}

	prompt := BuildPrompt(req)

	for _, want := range []string{
		"- tomato",
		"- pasta",
		"MOOD: stressed",
		"ALLERGIES TO AVOID",
		"shellfish, peanuts",
		"SERVINGS: 2",
		`"nutrition_info"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptOmitsEmptySections(t *testing.T) {
	req := &GenerationRequest{
		Ingredients: []string{"rice"},
		Mood:        MoodCalm,
		Servings:    2,
	}

	prompt := BuildPrompt(req)

	for _, absent := range []string{"DIETARY PREFERENCES", "ALLERGIES", "HEALTH GOALS", "CUISINE PREFERENCE"} {
		if strings.Contains(prompt, absent) {
			t.Errorf("prompt should not contain %q for empty request field", absent)
		}
	}
}

func TestBuildPromptMoodStyles(t *testing.T) {
	// 每種心情都要有自己的風格描述
	seen := make(map[string]bool)
	for _, mood := range AllMoods {
		prompt := BuildPrompt(&GenerationRequest{
			Ingredients: []string{"rice"},
			Mood:        mood,
			Servings:    2,
		})
		mc := moodContexts[mood]
		if !strings.Contains(prompt, mc.Style) {
			t.Errorf("mood %s: prompt missing style %q", mood, mc.Style)
		}
		if seen[mc.Style] {
			t.Errorf("mood %s: style %q reused by another mood", mood, mc.Style)
		}
		seen[mc.Style] = true
	}
}
