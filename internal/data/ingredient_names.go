package data

// Ingredient name constants. Code must use these instead of literal strings.
const (
	// Magic — Plant
	IllusionHerb = "illusion_herb"
	MistSeed     = "mist_seed"

	// Magic — Animal
	PhoenixFeather = "phoenix_feather"
	UnicornHair    = "unicorn_hair"

	// Magic — Mineral
	Dreamstone = "dreamstone"
	Stardust   = "stardust"

	// Natural — Plant
	Flower = "flower"
	Leaf   = "leaf"

	// Natural — Animal
	CatHair    = "cat_hair"
	SnakeVenom = "snake_venom"

	// Natural — Mineral
	Amethyst = "amethyst"
	Sulfur   = "sulfur"
)

// DefaultIngredientName is what out-of-catalog names are coerced to.
const DefaultIngredientName = Flower

// allIngredientNames: Magic (Plant, Animal, Mineral), затем Natural (Plant, Animal, Mineral).
var allIngredientNames = [...]string{
	IllusionHerb, MistSeed,
	PhoenixFeather, UnicornHair,
	Dreamstone, Stardust,
	Flower, Leaf,
	CatHair, SnakeVenom,
	Amethyst, Sulfur,
}

var ingredientDisplayNames = map[string]string{
	IllusionHerb:   "Illusion Herb",
	MistSeed:       "Mist Seed",
	PhoenixFeather: "Phoenix Feather",
	UnicornHair:    "Unicorn Hair",
	Dreamstone:     "Dreamstone",
	Stardust:       "Stardust",
	Flower:         "Flower",
	Leaf:           "Leaf",
	CatHair:        "Cat Hair",
	SnakeVenom:     "Snake Venom",
	Amethyst:       "Amethyst",
	Sulfur:         "Sulfur",
}

// AllIngredientNames returns every catalog name in fixed catalog order.
// The returned slice is a fresh copy.
func AllIngredientNames() []string {
	out := make([]string, len(allIngredientNames))
	copy(out, allIngredientNames[:])
	return out
}

// IsValidIngredientName reports whether name is one of the catalog constants.
func IsValidIngredientName(name string) bool {
	_, ok := ingredientDisplayNames[name]
	return ok
}

// DisplayName returns the label for a catalog name.
// Unknown input is returned unchanged.
func DisplayName(name string) string {
	if label, ok := ingredientDisplayNames[name]; ok {
		return label
	}
	return name
}

// ResolveIngredientName accepts either a catalog constant or its display label
// ("Cat Hair" → "cat_hair"). Anything else resolves to DefaultIngredientName.
// The second result is false when the fallback was applied.
func ResolveIngredientName(s string) (string, bool) {
	if IsValidIngredientName(s) {
		return s, true
	}
	for _, name := range allIngredientNames {
		if ingredientDisplayNames[name] == s {
			return name, true
		}
	}
	return DefaultIngredientName, false
}
