package common

import "testing"

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.raw); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		found bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around", `Sure! {"a":1} Hope it helps.`, `{"a":1}`, true},
		{"multiline", "prefix\n{\n\"a\": 1\n}\nsuffix", "{\n\"a\": 1\n}", true},
		{"no object", "no json here", "no json here", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJSONObject(tt.raw)
			if got != tt.want || found != tt.found {
				t.Errorf("got (%q, %v), want (%q, %v)", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestRemoveTrailingCommas(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"a":1,}`, `{"a":1}`},
		{`{"a":[1,2,],}`, `{"a":[1,2]}`},
		{`{"a":1}`, `{"a":1}`},
		{"{\"a\":1,\n}", "{\"a\":1\n}"},
	}

	for _, tt := range tests {
		if got := RemoveTrailingCommas(tt.raw); got != tt.want {
			t.Errorf("RemoveTrailingCommas(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestQuoteJSONKeys(t *testing.T) {
	raw := `{title: "X", cook_time: 30}`
	want := `{"title": "X", "cook_time": 30}`
	if got := QuoteJSONKeys(raw); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	if err := ParseJSON(`{"a":1} {"b":2}`, &v); err == nil {
		t.Error("expected error for trailing data")
	}
}
