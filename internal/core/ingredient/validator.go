package ingredient

import "strings"

// Validator 將使用者輸入的食材名稱對齊到標準名稱
type Validator struct {
	vocab *Vocabulary
}

// NewValidator 創建食材驗證器
func NewValidator(vocab *Vocabulary) *Validator {
	return &Validator{vocab: vocab}
}

// Validate 逐一正規化輸入的食材名稱。精確比對優先，
// 其次模糊比對，詞彙表外的名稱原樣保留，不丟棄任何輸入。
// 輸入被改寫時記錄到 Suggestions
func (v *Validator) Validate(tokens []string) *ValidationResult {
	validated := make([]string, 0, len(tokens))
	suggestions := make(map[string]string)

	for _, token := range tokens {
		normalized := strings.ToLower(strings.TrimSpace(token))

		out := normalized
		if canonical, ok := v.vocab.Lookup(normalized); ok {
			out = canonical
		} else if canonical, ok := v.vocab.FuzzyMatch(normalized); ok {
			out = canonical
		}

		if out != token {
			suggestions[token] = out
		}
		validated = append(validated, out)
	}

	return &ValidationResult{
		ValidatedIngredients: validated,
		Suggestions:          suggestions,
	}
}
