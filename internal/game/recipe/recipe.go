// Package recipe implements the potion recipe table and ingredient matching.
//
// A Recipe is a set of count-range requirements over ingredient categories plus
// bounds on the total ingredient count. A Table holds recipes in priority order
// and picks the winning recipe for a multiset through a Selector.
package recipe

import (
	"fmt"
	"slices"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/model"
)

// DefaultBaseScore is the base score of recipes that do not set one.
const DefaultBaseScore = 100

// Recipe describes one brewable potion. Recipes are immutable once placed in a Table.
type Recipe struct {
	// ID is the canonical identity of the composition a recipe was derived from.
	// Empty for hand-written recipes.
	ID             string        `yaml:"id,omitempty"`
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description,omitempty"`
	MinIngredients int           `yaml:"min_ingredients"`
	MaxIngredients int           `yaml:"max_ingredients"`
	Requirements   []Requirement `yaml:"requirements"`
	Level          int           `yaml:"level"`
	SubLevel       int           `yaml:"sub_level"`
	Duration       int           `yaml:"duration"` // seconds
	BaseScore      int           `yaml:"base_score"`
}

// Matches reports whether the multiset satisfies the ingredient count bounds and
// every requirement. Stops at the first failing requirement.
func (r *Recipe) Matches(ingredients []*model.Ingredient) bool {
	n := len(ingredients)
	if n < r.MinIngredients || n > r.MaxIngredients {
		return false
	}
	for _, req := range r.Requirements {
		if !req.SatisfiedBy(ingredients) {
			return false
		}
	}
	return true
}

// CouldBecome reports whether the partial selection can still grow into a match:
// it is not above the ingredient maximum and no requirement is already exceeded.
func (r *Recipe) CouldBecome(ingredients []*model.Ingredient) bool {
	if len(ingredients) > r.MaxIngredients {
		return false
	}
	for _, req := range r.Requirements {
		if req.Count(ingredients) > req.MaxCount {
			return false
		}
	}
	return true
}

// Complexity returns the sum of requirement minimums. Higher means more constrained.
func (r *Recipe) Complexity() int {
	complexity := 0
	for _, req := range r.Requirements {
		complexity += req.MinCount
	}
	return complexity
}

// Validate checks the recipe against the game constants.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRecipe)
	}
	if r.MinIngredients < data.MinIngredientsPerPotion {
		return fmt.Errorf("%w: %q min ingredients %d < %d",
			ErrInvalidRecipe, r.Name, r.MinIngredients, data.MinIngredientsPerPotion)
	}
	if r.MinIngredients > r.MaxIngredients {
		return fmt.Errorf("%w: %q min ingredients %d > max %d",
			ErrInvalidRecipe, r.Name, r.MinIngredients, r.MaxIngredients)
	}
	if r.Level < data.MinPotionLevel || r.Level > data.MaxPotionLevel {
		return fmt.Errorf("%w: %q level %d outside [%d, %d]",
			ErrInvalidRecipe, r.Name, r.Level, data.MinPotionLevel, data.MaxPotionLevel)
	}
	if r.SubLevel < data.MinPotionSubLevel || r.SubLevel > data.MaxPotionSubLevel {
		return fmt.Errorf("%w: %q sub-level %d outside [%d, %d]",
			ErrInvalidRecipe, r.Name, r.SubLevel, data.MinPotionSubLevel, data.MaxPotionSubLevel)
	}
	if r.Duration < data.MinPotionDuration || r.Duration > data.MaxPotionDuration {
		return fmt.Errorf("%w: %q duration %d outside [%d, %d]",
			ErrInvalidRecipe, r.Name, r.Duration, data.MinPotionDuration, data.MaxPotionDuration)
	}
	if r.BaseScore < 0 {
		return fmt.Errorf("%w: %q negative base score %d", ErrInvalidRecipe, r.Name, r.BaseScore)
	}
	for i, req := range r.Requirements {
		if err := req.Validate(); err != nil {
			return fmt.Errorf("recipe %q requirement %d: %w", r.Name, i, err)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Requirements = slices.Clone(r.Requirements)
	return &c
}

// String returns the recipe name.
func (r *Recipe) String() string {
	return r.Name
}
