package recipe

// moodContext 描述每種心情對料理風格的要求，拼進提示詞
type moodContext struct {
	Style    string
	Approach string
}

var moodContexts = map[Mood]moodContext{
	MoodHappy: {
		Style:    "vibrant, colorful, and celebratory",
		Approach: "Create something fun and visually appealing that matches the upbeat energy",
	},
	MoodSad: {
		Style:    "comforting, warm, and soothing",
		Approach: "Focus on comfort food that provides emotional warmth and satisfaction",
	},
	MoodEnergetic: {
		Style:    "fresh, protein-rich, and power-packed",
		Approach: "Build a nutritious meal that sustains high energy levels",
	},
	MoodTired: {
		Style:    "simple, quick, and effortless",
		Approach: "Keep preparation minimal with few steps and little cleanup",
	},
	MoodStressed: {
		Style:    "calming, nourishing, and stress-relieving",
		Approach: "Choose soothing flavors and a relaxed, forgiving cooking process",
	},
	MoodCalm: {
		Style:    "balanced, gentle, and mindful",
		Approach: "Create a harmonious meal that can be prepared at a leisurely pace",
	},
	MoodExcited: {
		Style:    "bold, adventurous, and novel",
		Approach: "Try interesting flavor combinations and techniques worth the enthusiasm",
	},
	MoodBored: {
		Style:    "creative, surprising, and engaging",
		Approach: "Make the cooking process itself interesting with unexpected twists",
	},
}

// moodTitles 後備食譜的標題形容詞
var moodTitles = map[Mood]string{
	MoodHappy:     "Cheerful",
	MoodSad:       "Comforting",
	MoodEnergetic: "Power-Packed",
	MoodTired:     "Easy",
	MoodStressed:  "Soothing",
	MoodCalm:      "Gentle",
	MoodExcited:   "Adventure",
	MoodBored:     "Creative",
}

// moodMessages 附在食譜上的心情訊息模板，%s 代入食譜標題
var moodMessages = map[Mood]string{
	MoodHappy:     "This cheerful %s matches your happy vibe. Enjoy every colorful bite!",
	MoodSad:       "A warm bowl of %s to wrap you in comfort. Things will look up soon.",
	MoodEnergetic: "Fuel that energy with this %s. You are unstoppable today!",
	MoodTired:     "This easy %s asks very little of you. Rest up and eat well.",
	MoodStressed:  "Let this soothing %s help you unwind. One step at a time.",
	MoodCalm:      "A gentle %s for a gentle evening. Savor the quiet moment.",
	MoodExcited:   "An adventurous %s for an adventurous mood. Dig in!",
	MoodBored:     "Shake things up with this creative %s. Boredom ends in the kitchen.",
}
