package ingredient

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name            string
		input           []string
		want            []string
		wantSuggestions map[string]string
	}{
		{
			name:            "exact match kept",
			input:           []string{"tomato", "garlic"},
			want:            []string{"tomato", "garlic"},
			wantSuggestions: map[string]string{},
		},
		{
			name:  "aliases normalized",
			input: []string{"Tomatoes", "spring onion", "courgette"},
			want:  []string{"tomato", "onion", "zucchini"},
			wantSuggestions: map[string]string{
				"Tomatoes":     "tomato",
				"spring onion": "onion",
				"courgette":    "zucchini",
			},
		},
		{
			name:  "fuzzy match by containment",
			input: []string{"tomat", "garlicky"},
			want:  []string{"tomato", "garlic"},
			wantSuggestions: map[string]string{
				"tomat":    "tomato",
				"garlicky": "garlic",
			},
		},
		{
			name:            "unknown kept verbatim",
			input:           []string{"dragonfruit jam"},
			want:            []string{"dragonfruit jam"},
			wantSuggestions: map[string]string{},
		},
		{
			name:  "whitespace and case normalized",
			input: []string{"  CHICKEN  "},
			want:  []string{"chicken"},
			wantSuggestions: map[string]string{
				"  CHICKEN  ": "chicken",
			},
		},
		{
			name:            "empty input",
			input:           []string{},
			want:            []string{},
			wantSuggestions: map[string]string{},
		},
	}

	v := NewValidator(DefaultVocabulary())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.input)
			if !reflect.DeepEqual(result.ValidatedIngredients, tt.want) {
				t.Errorf("got %v, want %v", result.ValidatedIngredients, tt.want)
			}
			if !reflect.DeepEqual(result.Suggestions, tt.wantSuggestions) {
				t.Errorf("got suggestions %v, want %v", result.Suggestions, tt.wantSuggestions)
			}
			if len(result.ValidatedIngredients) != len(tt.input) {
				t.Errorf("output length %d differs from input length %d", len(result.ValidatedIngredients), len(tt.input))
			}
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	v := NewValidator(DefaultVocabulary())

	first := v.Validate([]string{"Tomatoes", "spring onion", "dragonfruit jam"})
	second := v.Validate(first.ValidatedIngredients)

	if !reflect.DeepEqual(second.ValidatedIngredients, first.ValidatedIngredients) {
		t.Errorf("second pass changed output: %v -> %v", first.ValidatedIngredients, second.ValidatedIngredients)
	}
	if len(second.Suggestions) != 0 {
		t.Errorf("second pass produced suggestions: %v", second.Suggestions)
	}
}
