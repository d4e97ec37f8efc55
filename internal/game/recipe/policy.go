package recipe

import (
	"fmt"

	"github.com/udisondev/cauldron/internal/model"
)

// Policy names accepted by NewSelector.
const (
	PolicyFirstMatch = "first"
	PolicyBestScore  = "score"
)

// Selector picks the winning recipe among recipes in table order.
// Returns nil when nothing matches.
type Selector interface {
	Select(recipes []*Recipe, ingredients []*model.Ingredient) *Recipe
}

// FirstMatch returns the first matching recipe in table order.
// Tables using it must be ordered most specific first.
type FirstMatch struct{}

// Select implements Selector.
func (FirstMatch) Select(recipes []*Recipe, ingredients []*model.Ingredient) *Recipe {
	for _, r := range recipes {
		if r.Matches(ingredients) {
			return r
		}
	}
	return nil
}

// BestScore scores every matching recipe and returns the highest.
// Equal scores keep the recipe found first.
type BestScore struct {
	BonusPerExtra int     // added per ingredient beyond the first
	Multiplier    float64 // 0 is treated as 1
}

// Score returns (BaseScore + (n-1)*BonusPerExtra) * Multiplier.
func (b BestScore) Score(r *Recipe, ingredientCount int) float64 {
	mult := b.Multiplier
	if mult == 0 {
		mult = 1
	}
	extra := max(ingredientCount-1, 0)
	return float64(r.BaseScore+extra*b.BonusPerExtra) * mult
}

// Select implements Selector.
func (b BestScore) Select(recipes []*Recipe, ingredients []*model.Ingredient) *Recipe {
	var best *Recipe
	var bestScore float64
	for _, r := range recipes {
		if !r.Matches(ingredients) {
			continue
		}
		score := b.Score(r, len(ingredients))
		if best == nil || score > bestScore {
			best = r
			bestScore = score
		}
	}
	return best
}

// NewSelector maps a policy name from configuration to a Selector.
// An empty name means first-match.
func NewSelector(policy string, bonusPerExtra int, multiplier float64) (Selector, error) {
	switch policy {
	case "", PolicyFirstMatch:
		return FirstMatch{}, nil
	case PolicyBestScore:
		return BestScore{BonusPerExtra: bonusPerExtra, Multiplier: multiplier}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}
