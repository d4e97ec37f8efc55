package recipe

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/model"
)

// DefaultVectors enumerates every composition of 1..maxIngredients ingredients that
// contains at least one Magic ingredient. Ordered most ingredients first, then by
// identity, which is the priority order FirstMatch expects.
func DefaultVectors(maxIngredients int) []Vector {
	var out []Vector

	// 6 корзин: 3 magic + 3 natural, раскладываем total по корзинам.
	var buckets [2 * model.SubFamilyCount]int
	var walk func(idx, remaining int)
	walk = func(idx, remaining int) {
		if idx == len(buckets)-1 {
			buckets[idx] = remaining
			var v Vector
			copy(v.Magic[:], buckets[:model.SubFamilyCount])
			copy(v.Natural[:], buckets[model.SubFamilyCount:])
			if v.MagicTotal() > 0 {
				out = append(out, v)
			}
			return
		}
		for n := 0; n <= remaining; n++ {
			buckets[idx] = n
			walk(idx+1, remaining-n)
		}
	}

	for total := maxIngredients; total >= 1; total-- {
		walk(0, total)
	}

	slices.SortStableFunc(out, func(a, b Vector) int {
		if c := cmp.Compare(b.Total(), a.Total()); c != 0 {
			return c
		}
		return cmp.Compare(a.Identity(), b.Identity())
	})
	return out
}

// DefaultRecipes builds the built-in recipe book from DefaultVectors.
func DefaultRecipes() ([]*Recipe, error) {
	vectors := DefaultVectors(data.MaxIngredientsPerPotion)
	recipes := make([]*Recipe, 0, len(vectors))
	for _, v := range vectors {
		r, err := FromVector(v)
		if err != nil {
			return nil, fmt.Errorf("building default recipe %s: %w", v.Identity(), err)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// DefaultTable returns the built-in book as a validated table.
func DefaultTable(selector Selector) (*Table, error) {
	recipes, err := DefaultRecipes()
	if err != nil {
		return nil, err
	}
	t, err := NewTable(recipes, selector)
	if err != nil {
		return nil, fmt.Errorf("building default table: %w", err)
	}
	slog.Info("loaded recipes", "count", t.Len(), "source", "built-in")
	return t, nil
}
