// Package identity computes the canonical potion ID of an ingredient multiset.
//
// Format: family initial + sub-family initial + count per group, groups sorted
// ordinally, no separators. "MP1" is one Magic Plant, "MP2NM1" is two Magic
// Plants and one Natural Mineral. Identity is by category composition: two
// different Magic Plants contribute the same key.
package identity

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/cauldron/internal/model"
)

// Initial returns the upper-cased first letter of s, or "?" for an empty string.
func Initial(s string) string {
	if s == "" {
		return "?"
	}
	return strings.ToUpper(s[:1])
}

// Key returns the two-letter group key for a (family, sub-family) pair, e.g. "MP".
func Key(family model.Family, subFamily model.SubFamily) string {
	return Initial(family.String()) + Initial(subFamily.String())
}

// Compute returns the identity of the multiset. Input order never matters.
// An empty multiset yields "".
func Compute(ingredients []*model.Ingredient) string {
	counts := make(map[string]int, len(ingredients))
	for _, ing := range ingredients {
		counts[Key(ing.Family(), ing.SubFamily())]++
	}
	return FromCounts(counts)
}

// FromCounts builds an identity from an already tallied key → count map.
// Keys with a non-positive count are skipped.
func FromCounts(counts map[string]int) string {
	keys := slices.Sorted(maps.Keys(counts))

	var b strings.Builder
	for _, key := range keys {
		n := counts[key]
		if n <= 0 {
			continue
		}
		b.WriteString(key)
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// Kinds returns the group keys of every (family, sub-family) pair,
// Magic first, sub-families in catalog order.
func Kinds() []string {
	kinds := make([]string, 0, len(model.Families)*model.SubFamilyCount)
	for _, f := range model.Families {
		for _, s := range model.SubFamilies {
			kinds = append(kinds, Key(f, s))
		}
	}
	return kinds
}

// All returns every identity reachable with 1..maxIngredients ingredients,
// sorted and without duplicates.
func All(maxIngredients int) []string {
	return enumerate(maxIngredients, nil)
}

// Brewable is All restricted to compositions with at least one Magic ingredient.
// Nothing outside this set can match a recipe.
func Brewable(maxIngredients int) []string {
	magic := Initial(model.FamilyMagic.String())
	return enumerate(maxIngredients, func(counts map[string]int) bool {
		for key, n := range counts {
			if n > 0 && strings.HasPrefix(key, magic) {
				return true
			}
		}
		return false
	})
}

func enumerate(maxIngredients int, keep func(counts map[string]int) bool) []string {
	kinds := Kinds()
	seen := make(map[string]struct{})
	counts := make(map[string]int, len(kinds))

	// Сочетания с повторениями: неубывающий индекс вида, чтобы не перебирать перестановки.
	var walk func(start, remaining int)
	walk = func(start, remaining int) {
		if remaining == 0 {
			if keep == nil || keep(counts) {
				seen[FromCounts(counts)] = struct{}{}
			}
			return
		}
		for i := start; i < len(kinds); i++ {
			counts[kinds[i]]++
			walk(i, remaining-1)
			counts[kinds[i]]--
		}
	}

	for total := 1; total <= maxIngredients; total++ {
		walk(0, total)
	}

	return slices.Sorted(maps.Keys(seen))
}
