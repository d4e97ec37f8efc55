package data

// Potion system limits.
const (
	MaxIngredientsPerPotion = 4
	MinIngredientsPerPotion = 1
	MaxShelves              = 3
)

// Potion level bounds.
const (
	MinPotionLevel    = 1
	MaxPotionLevel    = 5
	MinPotionSubLevel = 1
	MaxPotionSubLevel = 3
)

// Potion durations, seconds.
const (
	MinPotionDuration     = 1
	MaxPotionDuration     = 10
	DefaultPotionDuration = 1
)

// Deck defaults — сколько копий каждого ингредиента в колоде и размер корзины.
const (
	DefaultCopiesPerIngredient = 4
	DefaultHandSize            = 5
)
