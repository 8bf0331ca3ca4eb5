package ingredient

import (
	"sort"
	"strings"
)

// VocabularyEntry 一個標準食材名稱與其表面形式
type VocabularyEntry struct {
	Canonical string
	Aliases   []string
}

// Vocabulary 標準食材目錄。啟動時載入一次，執行期間唯讀，
// 可供任意數量的請求並發查詢
type Vocabulary struct {
	entries []VocabularyEntry
	byAlias map[string]string // alias -> canonical
	sorted  []aliasRef        // 依 alias 長度遞減排序
}

type aliasRef struct {
	alias     string
	canonical string
}

// NewVocabulary 由條目建立詞彙表，條目順序即後續比對的固定順序
func NewVocabulary(entries []VocabularyEntry) *Vocabulary {
	v := &Vocabulary{
		entries: entries,
		byAlias: make(map[string]string),
	}

	for _, e := range entries {
		for _, alias := range e.Aliases {
			if _, exists := v.byAlias[alias]; !exists {
				v.byAlias[alias] = e.Canonical
			}
			v.sorted = append(v.sorted, aliasRef{alias: alias, canonical: e.Canonical})
		}
	}

	// 長的 alias 先比對，例如 "sweet potato" 要先於 "potato"
	sort.SliceStable(v.sorted, func(i, j int) bool {
		return len(v.sorted[i].alias) > len(v.sorted[j].alias)
	})

	return v
}

// Lookup 精確比對所有表面形式，回傳標準名稱
func (v *Vocabulary) Lookup(token string) (string, bool) {
	canonical, ok := v.byAlias[token]
	return canonical, ok
}

// FuzzyMatch 回傳第一個與 token 有對稱子字串包含關係的標準名稱，
// 以詞彙表的固定順序決定優先
func (v *Vocabulary) FuzzyMatch(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, e := range v.entries {
		for _, alias := range e.Aliases {
			if strings.Contains(alias, token) || strings.Contains(token, alias) {
				return e.Canonical, true
			}
		}
	}
	return "", false
}

// aliasesByLength 所有表面形式，依長度遞減排序
func (v *Vocabulary) aliasesByLength() []aliasRef {
	return v.sorted
}

// Size 詞彙表條目數
func (v *Vocabulary) Size() int {
	return len(v.entries)
}

// DefaultVocabulary 內建食材詞彙表
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(defaultEntries)
}

// 內建食材目錄，順序固定（比對的決勝順序依賴它）
var defaultEntries = []VocabularyEntry{
	// 蔬菜
	{"tomato", []string{"tomato", "tomatoes", "cherry tomato", "plum tomato"}},
	{"onion", []string{"onion", "onions", "red onion", "white onion", "yellow onion", "spring onion"}},
	{"garlic", []string{"garlic", "garlic clove"}},
	{"carrot", []string{"carrot", "carrots"}},
	{"potato", []string{"potato", "potatoes", "sweet potato"}},
	{"bell pepper", []string{"bell pepper", "capsicum", "sweet pepper"}},
	{"broccoli", []string{"broccoli"}},
	{"spinach", []string{"spinach", "leafy greens", "greens"}},
	{"lettuce", []string{"lettuce", "salad", "iceberg"}},
	{"cucumber", []string{"cucumber"}},
	{"celery", []string{"celery"}},
	{"mushroom", []string{"mushroom", "mushrooms", "button mushroom"}},
	{"zucchini", []string{"zucchini", "courgette"}},
	{"eggplant", []string{"eggplant", "aubergine"}},
	{"cabbage", []string{"cabbage"}},
	{"cauliflower", []string{"cauliflower"}},
	{"peas", []string{"peas", "green peas"}},
	{"corn", []string{"corn", "maize", "sweet corn"}},
	{"ginger", []string{"ginger", "ginger root"}},
	{"chili", []string{"chili", "chilli", "hot pepper"}},
	{"green beans", []string{"green beans"}},
	{"asparagus", []string{"asparagus"}},
	{"kale", []string{"kale"}},

	// 水果
	{"apple", []string{"apple", "apples"}},
	{"banana", []string{"banana", "bananas"}},
	{"orange", []string{"orange", "oranges", "citrus"}},
	{"lemon", []string{"lemon", "lemons"}},
	{"lime", []string{"lime", "limes"}},
	{"avocado", []string{"avocado", "avocados"}},
	{"mango", []string{"mango", "mangoes"}},
	{"pineapple", []string{"pineapple"}},
	{"strawberry", []string{"strawberry", "strawberries"}},
	{"grapes", []string{"grapes", "grape"}},
	{"watermelon", []string{"watermelon"}},
	{"blueberries", []string{"blueberries", "berries"}},
	{"coconut", []string{"coconut"}},

	// 蛋白質
	{"chicken", []string{"chicken", "poultry", "chicken breast", "chicken thigh"}},
	{"beef", []string{"beef", "steak"}},
	{"pork", []string{"pork", "bacon", "ham"}},
	{"fish", []string{"fish", "salmon", "tuna", "cod", "seafood"}},
	{"shrimp", []string{"shrimp", "prawn", "prawns"}},
	{"egg", []string{"egg", "eggs"}},
	{"tofu", []string{"tofu", "bean curd"}},
	{"beans", []string{"beans", "kidney beans", "black beans"}},
	{"lentils", []string{"lentils", "dal"}},
	{"chickpeas", []string{"chickpeas"}},
	{"paneer", []string{"paneer"}},

	// 乳製品
	{"milk", []string{"milk", "dairy"}},
	{"cheese", []string{"cheese", "cheddar", "mozzarella", "cottage cheese"}},
	{"yogurt", []string{"yogurt", "yoghurt", "curd"}},
	{"butter", []string{"butter"}},
	{"cream", []string{"cream", "heavy cream", "sour cream"}},

	// 穀物與麵食
	{"rice", []string{"rice", "basmati", "jasmine rice"}},
	{"pasta", []string{"pasta", "spaghetti", "noodle", "noodles", "macaroni"}},
	{"bread", []string{"bread", "loaf", "baguette"}},
	{"flour", []string{"flour", "wheat flour"}},
	{"oats", []string{"oats", "oatmeal"}},
	{"quinoa", []string{"quinoa"}},
	{"couscous", []string{"couscous"}},

	// 香草與香料
	{"basil", []string{"basil"}},
	{"cilantro", []string{"cilantro", "coriander", "coriander leaves"}},
	{"parsley", []string{"parsley"}},
	{"mint", []string{"mint"}},
	{"rosemary", []string{"rosemary"}},
	{"thyme", []string{"thyme"}},
	{"oregano", []string{"oregano"}},
	{"cumin", []string{"cumin"}},
	{"turmeric", []string{"turmeric"}},
	{"paprika", []string{"paprika"}},
	{"cinnamon", []string{"cinnamon"}},
	{"dill", []string{"dill"}},
	{"fennel", []string{"fennel"}},

	// 調味料與其他
	{"olive oil", []string{"olive oil", "cooking oil", "vegetable oil", "coconut oil"}},
	{"salt", []string{"salt", "sea salt"}},
	{"pepper", []string{"pepper", "black pepper"}},
	{"soy sauce", []string{"soy sauce", "soya sauce"}},
	{"vinegar", []string{"vinegar"}},
	{"honey", []string{"honey"}},
	{"sugar", []string{"sugar"}},
	{"ketchup", []string{"ketchup"}},
	{"mustard", []string{"mustard"}},
	{"almonds", []string{"almonds"}},
	{"cashews", []string{"cashews"}},
	{"peanuts", []string{"peanuts"}},
	{"walnuts", []string{"walnuts"}},
	{"sesame seeds", []string{"sesame seeds"}},
	{"chia seeds", []string{"chia seeds"}},
}
