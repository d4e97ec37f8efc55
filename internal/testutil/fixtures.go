package testutil

import (
	"sync"
	"testing"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/game/identity"
	"github.com/udisondev/cauldron/internal/model"
)

// Catalog returns the built-in ingredient catalog, built once per test binary.
var Catalog = sync.OnceValues(data.NewCatalog)

// Ingredients возвращает ингредиенты каталога по именам (константы или display names).
func Ingredients(tb testing.TB, names ...string) []*model.Ingredient {
	tb.Helper()
	c := mustCatalog(tb)

	out := make([]*model.Ingredient, 0, len(names))
	for _, name := range names {
		ing, ok := c.Get(name)
		if !ok {
			tb.Fatalf("ingredient %q not in catalog", name)
		}
		out = append(out, ing)
	}
	return out
}

// Kinds returns one representative catalog ingredient per group key ("MP", "NM", ...).
// Kinds(tb, "MP", "MP", "NA") is two Magic Plants and one Natural Animal.
func Kinds(tb testing.TB, keys ...string) []*model.Ingredient {
	tb.Helper()
	c := mustCatalog(tb)

	byKey := make(map[string]*model.Ingredient)
	for _, ing := range c.All() {
		k := identity.Key(ing.Family(), ing.SubFamily())
		if _, seen := byKey[k]; !seen {
			byKey[k] = ing
		}
	}

	out := make([]*model.Ingredient, 0, len(keys))
	for _, k := range keys {
		ing, ok := byKey[k]
		if !ok {
			tb.Fatalf("unknown ingredient kind %q", k)
		}
		out = append(out, ing)
	}
	return out
}

func mustCatalog(tb testing.TB) *data.Catalog {
	tb.Helper()
	c, err := Catalog()
	if err != nil {
		tb.Fatalf("building catalog: %v", err)
	}
	return c
}
