package recipe

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/cauldron/internal/model"
)

// Table — упорядоченный список рецептов. Строится один раз и больше не меняется,
// поэтому безопасен для конкурентного чтения без блокировок.
type Table struct {
	recipes  []*Recipe
	byName   map[string]*Recipe
	selector Selector
}

// NewTable validates and copies the recipes. Order is preserved and significant for
// FirstMatch. A nil selector means FirstMatch.
func NewTable(recipes []*Recipe, selector Selector) (*Table, error) {
	if selector == nil {
		selector = FirstMatch{}
	}

	t := &Table{
		recipes:  make([]*Recipe, 0, len(recipes)),
		byName:   make(map[string]*Recipe, len(recipes)),
		selector: selector,
	}

	for i, r := range recipes {
		if r == nil {
			return nil, fmt.Errorf("recipe %d: %w: nil recipe", i, ErrInvalidRecipe)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("recipe %d %q: %w", i, r.Name, err)
		}
		if _, dup := t.byName[r.Name]; dup {
			return nil, fmt.Errorf("recipe %d: %w: %q", i, ErrDuplicateRecipe, r.Name)
		}
		c := r.Clone()
		t.recipes = append(t.recipes, c)
		t.byName[c.Name] = c
	}

	return t, nil
}

// Match returns the winning recipe for the multiset, or (nil, false).
//
// Preconditions checked before any recipe, regardless of table contents:
//  1. An empty multiset never matches.
//  2. A multiset without a Magic ingredient never matches.
func (t *Table) Match(ingredients []*model.Ingredient) (*Recipe, bool) {
	if len(ingredients) == 0 {
		return nil, false
	}
	if !model.HasMagic(ingredients) {
		slog.Debug("recipe match rejected: no magic ingredient", "count", len(ingredients))
		return nil, false
	}

	r := t.selector.Select(t.recipes, ingredients)
	if r == nil {
		return nil, false
	}
	return r, true
}

// MatchAll returns every recipe the multiset satisfies, in table order.
// The no-magic rule applies here too.
func (t *Table) MatchAll(ingredients []*model.Ingredient) []*Recipe {
	if len(ingredients) == 0 || !model.HasMagic(ingredients) {
		return nil
	}
	var out []*Recipe
	for _, r := range t.recipes {
		if r.Matches(ingredients) {
			out = append(out, r)
		}
	}
	return out
}

// Candidates returns recipes the partial selection could still grow into.
func (t *Table) Candidates(ingredients []*model.Ingredient) []*Recipe {
	var out []*Recipe
	for _, r := range t.recipes {
		if r.CouldBecome(ingredients) {
			out = append(out, r)
		}
	}
	return out
}

// Get returns a recipe by name.
func (t *Table) Get(name string) (*Recipe, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Recipes returns the recipes in table order. Callers must not modify them.
func (t *Table) Recipes() []*Recipe {
	out := make([]*Recipe, len(t.recipes))
	copy(out, t.recipes)
	return out
}

// Len returns the number of recipes.
func (t *Table) Len() int {
	return len(t.recipes)
}

// Selector returns the table's selection policy.
func (t *Table) Selector() Selector {
	return t.selector
}
