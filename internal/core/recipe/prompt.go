package recipe

import (
	"fmt"
	"strings"
)

// BuildPrompt 組出食譜生成的提示詞。輸出只由請求內容決定，
// 同一請求在重試之間得到完全相同的提示詞
func BuildPrompt(req *GenerationRequest) string {
	var b strings.Builder

	b.WriteString("You are a professional chef and nutritionist. Create a recipe using the available ingredients.\n\n")

	b.WriteString("AVAILABLE INGREDIENTS:\n")
	for _, ing := range req.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}
	b.WriteString("\n")

	mc := moodContexts[req.Mood]
	fmt.Fprintf(&b, "MOOD: %s\n", req.Mood)
	fmt.Fprintf(&b, "The dish should be %s.\n", mc.Style)
	fmt.Fprintf(&b, "%s.\n\n", mc.Approach)

	if len(req.DietaryPreferences) > 0 {
		fmt.Fprintf(&b, "DIETARY PREFERENCES: %s\n", strings.Join(req.DietaryPreferences, ", "))
	}
	if len(req.Allergies) > 0 {
		fmt.Fprintf(&b, "ALLERGIES TO AVOID (must not appear in any form): %s\n", strings.Join(req.Allergies, ", "))
	}
	if len(req.HealthGoals) > 0 {
		fmt.Fprintf(&b, "HEALTH GOALS: %s\n", strings.Join(req.HealthGoals, ", "))
	}
	if req.CuisinePreference != "" {
		fmt.Fprintf(&b, "CUISINE PREFERENCE: %s\n", req.CuisinePreference)
	}
	fmt.Fprintf(&b, "SERVINGS: %d\n\n", req.Servings)

	b.WriteString(`RULES:
- Use primarily the available ingredients listed above.
- You may assume common pantry staples (salt, pepper, oil, water) are available.
- Do not require ingredients the user does not have, beyond pantry staples.
- Quantities in the ingredient list must include amounts and units.
- Instructions must be numbered, concrete steps a home cook can follow.

Respond with ONLY a valid JSON object in exactly this format, no markdown, no extra text:
{
  "title": "Recipe Name",
  "description": "Brief appetizing description",
  "ingredients": ["2 cups rice", "1 tbsp olive oil"],
  "instructions": ["Step one", "Step two"],
  "prep_time": 15,
  "cook_time": 30,
  "total_time": 45,
  "servings": 2,
  "difficulty": "easy",
  "cuisine_type": "fusion",
  "nutrition_info": {
    "calories": 350,
    "protein": 20,
    "carbs": 40,
    "fat": 12,
    "fiber": 6,
    "sugar": 5,
    "sodium": 400
  },
  "tags": ["quick", "healthy"]
}
`)

	return b.String()
}
