package recipe

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mood-recipe-api/internal/core/ai/provider"
	"mood-recipe-api/internal/infrastructure/config"
	"mood-recipe-api/internal/pkg/common"
)

// fakeOracle 依序回放預設回應的 AI 替身
type fakeOracle struct {
	healthy    bool
	responses  []string
	errs       []error
	calls      int
	lastPrompt string
}

func (f *fakeOracle) Healthy() bool { return f.healthy }

func (f *fakeOracle) GenerateTextNoCache(ctx context.Context, model, prompt string, sampling provider.Sampling) (string, error) {
	i := f.calls
	f.calls++
	f.lastPrompt = prompt
	var resp string
	var err error
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func testConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			Model:     "test-model",
			MaxTokens: 2048,
		},
		Recipe: config.RecipeConfig{
			MaxRetries:      3,
			RetryBackoff:    10 * time.Millisecond,
			DefaultServings: 2,
		},
	}
}

const validResponse = `{"title":"Test Dish","ingredients":["1 cup rice"],"instructions":["Cook rice"]}`

func TestGenerateNoIngredients(t *testing.T) {
	oracle := &fakeOracle{healthy: true}
	s := NewService(testConfig(), oracle)

	_, err := s.Generate(context.Background(), &GenerationRequest{Mood: MoodHappy})
	if !errors.Is(err, common.ErrNoIngredients) {
		t.Errorf("expected ErrNoIngredients, got %v", err)
	}
	if oracle.calls != 0 {
		t.Errorf("oracle should not be called without ingredients, got %d calls", oracle.calls)
	}
}

func TestGenerateOracleUnavailable(t *testing.T) {
	oracle := &fakeOracle{healthy: false}
	s := NewService(testConfig(), oracle)

	_, err := s.Generate(context.Background(), &GenerationRequest{
		Ingredients: []string{"rice"},
		Mood:        MoodHappy,
	})
	if !errors.Is(err, common.ErrOracleUnavailable) {
		t.Errorf("expected ErrOracleUnavailable, got %v", err)
	}
	if oracle.calls != 0 {
		t.Errorf("oracle should not be called when unavailable, got %d calls", oracle.calls)
	}
}

func TestGenerateSuccessFirstAttempt(t *testing.T) {
	oracle := &fakeOracle{healthy: true, responses: []string{validResponse}}
	s := NewService(testConfig(), oracle)

	rec, err := s.Generate(context.Background(), &GenerationRequest{
		Ingredients: []string{"rice"},
		Mood:        MoodCalm,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Title != "Test Dish" {
		t.Errorf("got title %q", rec.Title)
	}
	if rec.GeneratedAt.IsZero() {
		t.Error("generated_at not stamped")
	}
	if oracle.calls != 1 {
		t.Errorf("expected 1 call, got %d", oracle.calls)
	}
}

func TestGenerateRetriesThenSucceeds(t *testing.T) {
	oracle := &fakeOracle{
		healthy:   true,
		responses: []string{"not json at all", `{"title":"X"}`, validResponse},
	}
	s := NewService(testConfig(), oracle)

	rec, err := s.Generate(context.Background(), &GenerationRequest{
		Ingredients: []string{"rice"},
		Mood:        MoodHappy,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Title != "Test Dish" {
		t.Errorf("got title %q", rec.Title)
	}
	if oracle.calls != 3 {
		t.Errorf("expected 3 calls, got %d", oracle.calls)
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	oracle := &fakeOracle{healthy: true, responses: []string{"", "", ""}}
	s := NewService(testConfig(), oracle)

	start := time.Now()
	_, err := s.Generate(context.Background(), &GenerationRequest{
		Ingredients: []string{"rice"},
		Mood:        MoodHappy,
	})
	elapsed := time.Since(start)

	if !errors.Is(err, common.ErrRecipeGenerationFailed) {
		t.Errorf("expected ErrRecipeGenerationFailed, got %v", err)
	}
	if oracle.calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", oracle.calls)
	}
	// 兩次重試之間各等一次退避
	if elapsed < 2*10*time.Millisecond {
		t.Errorf("expected backoff between attempts, elapsed %v", elapsed)
	}
}

func TestGenerateContextCanceledDuringBackoff(t *testing.T) {
	cfg := testConfig()
	cfg.Recipe.RetryBackoff = time.Second

	oracle := &fakeOracle{healthy: true, responses: []string{"", "", ""}}
	s := NewService(cfg, oracle)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := s.Generate(ctx, &GenerationRequest{
		Ingredients: []string{"rice"},
		Mood:        MoodHappy,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if oracle.calls != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", oracle.calls)
	}
}

func TestGenerateDefaultServingsWithoutMutation(t *testing.T) {
	oracle := &fakeOracle{healthy: true, responses: []string{validResponse}}
	s := NewService(testConfig(), oracle)

	req := &GenerationRequest{
		Ingredients: []string{"rice"},
		Mood:        MoodHappy,
	}
	if _, err := s.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 預設份數進提示詞，但呼叫方的請求不被改動
	if !strings.Contains(oracle.lastPrompt, "SERVINGS: 2") {
		t.Error("prompt should use the default servings")
	}
	if req.Servings != 0 {
		t.Errorf("caller's request mutated, servings = %d", req.Servings)
	}
}

func TestGenerateRetriesEachReachOracle(t *testing.T) {
	// 同一提示詞的重試每次都要真的打到 oracle，
	// 不能被任何中間層用上一次的回應頂替
	oracle := &fakeOracle{
		healthy:   true,
		responses: []string{"this is not json at all", "this is not json at all", "this is not json at all"},
	}
	s := NewService(testConfig(), oracle)

	_, err := s.Generate(context.Background(), &GenerationRequest{
		Ingredients: []string{"rice"},
		Mood:        MoodHappy,
	})
	if !errors.Is(err, common.ErrRecipeGenerationFailed) {
		t.Errorf("expected ErrRecipeGenerationFailed, got %v", err)
	}
	if oracle.calls != 3 {
		t.Errorf("expected every retry to reach the oracle, got %d calls", oracle.calls)
	}
}
