package recipe

import (
	"strings"
	"testing"
)

func TestParseResponseValid(t *testing.T) {
	raw := `{
		"title": "Tomato Pasta",
		"description": "Quick weeknight pasta",
		"ingredients": ["200g pasta", "2 tomatoes"],
		"instructions": ["Boil pasta", "Add sauce"],
		"prep_time": 10,
		"cook_time": 20,
		"total_time": 30,
		"servings": 2,
		"difficulty": "easy",
		"cuisine_type": "italian",
		"nutrition_info": {
			"calories": 420.5,
			"protein": 14,
			"carbs": 60,
			"fat": 10,
			"fiber": 5,
			"sugar": 8,
			"sodium": 300
		},
		"tags": ["quick"]
	}`

	outcome := ParseResponse(raw, MoodHappy)
	if outcome.Status != ParseOK {
		t.Fatalf("expected ParseOK, got status %d reason %q", outcome.Status, outcome.Reason)
	}

	rec := outcome.Recipe
	if rec.Title != "Tomato Pasta" {
		t.Errorf("got title %q", rec.Title)
	}
	if rec.PrepTime != 10 || rec.CookTime != 20 || rec.TotalTime != 30 {
		t.Errorf("got times %d/%d/%d", rec.PrepTime, rec.CookTime, rec.TotalTime)
	}
	if rec.Nutrition.Calories != 420.5 {
		t.Errorf("got calories %v", rec.Nutrition.Calories)
	}
	if rec.MoodMessage == "" || !strings.Contains(rec.MoodMessage, "Tomato Pasta") {
		t.Errorf("mood message should reference the title, got %q", rec.MoodMessage)
	}
}

func TestParseResponseRepairs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "code fence",
			raw:  "```json\n{\"title\":\"X\",\"ingredients\":[\"a\"],\"instructions\":[\"b\"]}\n```",
		},
		{
			name: "surrounding prose",
			raw:  "Here is your recipe:\n{\"title\":\"X\",\"ingredients\":[\"a\"],\"instructions\":[\"b\"]}\nEnjoy!",
		},
		{
			name: "trailing comma",
			raw:  `{"title":"X","ingredients":["a"],"instructions":["b"],}`,
		},
		{
			name: "trailing comma in array",
			raw:  `{"title":"X","ingredients":["a",],"instructions":["b"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := ParseResponse(tt.raw, MoodCalm)
			if outcome.Status != ParseOK {
				t.Fatalf("expected ParseOK, got status %d reason %q", outcome.Status, outcome.Reason)
			}
			if outcome.Recipe.Title != "X" {
				t.Errorf("got title %q", outcome.Recipe.Title)
			}
		})
	}
}

func TestParseResponseDefaults(t *testing.T) {
	raw := `{"ingredients":["a"],"instructions":["b"]}`

	outcome := ParseResponse(raw, MoodTired)
	if outcome.Status != ParseOK {
		t.Fatalf("expected ParseOK, got status %d reason %q", outcome.Status, outcome.Reason)
	}

	rec := outcome.Recipe
	if rec.Title != "Generated Recipe" {
		t.Errorf("got title %q", rec.Title)
	}
	if rec.Description != "A delicious recipe" {
		t.Errorf("got description %q", rec.Description)
	}
	if rec.PrepTime != 15 || rec.CookTime != 30 || rec.TotalTime != 45 {
		t.Errorf("got times %d/%d/%d, want 15/30/45", rec.PrepTime, rec.CookTime, rec.TotalTime)
	}
	if rec.Servings != 2 {
		t.Errorf("got servings %d, want 2", rec.Servings)
	}
	if rec.Difficulty != "medium" {
		t.Errorf("got difficulty %q, want medium", rec.Difficulty)
	}
	if rec.CuisineType != "fusion" {
		t.Errorf("got cuisine %q, want fusion", rec.CuisineType)
	}
	want := NutritionInfo{Calories: 300, Protein: 15, Carbs: 30, Fat: 10, Fiber: 5, Sugar: 5, Sodium: 400}
	if rec.Nutrition != want {
		t.Errorf("got nutrition %+v, want %+v", rec.Nutrition, want)
	}
}

func TestParseResponseFailed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no braces", "I cannot generate a recipe right now."},
		{"empty", ""},
		{"broken json", `{"title": "X", "ingredients": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := ParseResponse(tt.raw, MoodBored)
			if outcome.Status != ParseFailed {
				t.Errorf("expected ParseFailed, got status %d", outcome.Status)
			}
			if outcome.Recipe != nil {
				t.Errorf("failed parse should not carry a recipe")
			}
		})
	}
}

func TestParseResponseIncomplete(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantMissing []string
	}{
		{
			name:        "no ingredients",
			raw:         `{"title":"X","ingredients":[],"instructions":["b"]}`,
			wantMissing: []string{"ingredients"},
		},
		{
			name:        "no instructions",
			raw:         `{"title":"X","ingredients":["a"]}`,
			wantMissing: []string{"instructions"},
		},
		{
			name:        "both missing",
			raw:         `{"title":"X"}`,
			wantMissing: []string{"ingredients", "instructions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := ParseResponse(tt.raw, MoodSad)
			if outcome.Status != ParseIncomplete {
				t.Fatalf("expected ParseIncomplete, got status %d reason %q", outcome.Status, outcome.Reason)
			}
			if len(outcome.MissingFields) != len(tt.wantMissing) {
				t.Fatalf("got missing %v, want %v", outcome.MissingFields, tt.wantMissing)
			}
			for i, f := range tt.wantMissing {
				if outcome.MissingFields[i] != f {
					t.Errorf("got missing %v, want %v", outcome.MissingFields, tt.wantMissing)
				}
			}
		})
	}
}
