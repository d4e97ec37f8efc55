package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/cauldron/internal/model"
)

type ingredientDef struct {
	name        string
	family      model.Family
	subFamily   model.SubFamily
	description string
}

// ingredientDefs — встроенные определения, по одному на каждую константу имени.
var ingredientDefs = []ingredientDef{
	{IllusionHerb, model.FamilyMagic, model.SubFamilyPlant, "A shimmering herb that bends light around whoever carries it."},
	{MistSeed, model.FamilyMagic, model.SubFamilyPlant, "Seeds that sprout into fog instead of stems."},
	{PhoenixFeather, model.FamilyMagic, model.SubFamilyAnimal, "Still warm long after it has fallen."},
	{UnicornHair, model.FamilyMagic, model.SubFamilyAnimal, "A single silver strand, impossibly strong."},
	{Dreamstone, model.FamilyMagic, model.SubFamilyMineral, "A pale stone that hums when someone nearby is asleep."},
	{Stardust, model.FamilyMagic, model.SubFamilyMineral, "Gathered from meteor craters at dawn."},
	{Flower, model.FamilyNatural, model.SubFamilyPlant, "An ordinary meadow flower."},
	{Leaf, model.FamilyNatural, model.SubFamilyPlant, "A broad green leaf."},
	{CatHair, model.FamilyNatural, model.SubFamilyAnimal, "Collected from a very patient cat."},
	{SnakeVenom, model.FamilyNatural, model.SubFamilyAnimal, "Handle with care."},
	{Amethyst, model.FamilyNatural, model.SubFamilyMineral, "A violet crystal."},
	{Sulfur, model.FamilyNatural, model.SubFamilyMineral, "Yellow and pungent."},
}

// NewIngredient builds an ingredient whose name is validated against the catalog
// constants. Display labels are converted to constants; any other unknown name is
// replaced by DefaultIngredientName and logged as a warning.
func NewIngredient(name string, family model.Family, subFamily model.SubFamily, description string) (*model.Ingredient, error) {
	resolved, ok := ResolveIngredientName(name)
	if !ok {
		slog.Warn("invalid ingredient name, using default",
			"name", name,
			"default", resolved)
	}
	return model.NewIngredient(resolved, DisplayName(resolved), family, subFamily, description)
}

// Catalog — неизменяемый индекс ингредиентов, строится один раз при старте.
// Safe for concurrent reads.
type Catalog struct {
	byName  map[string]*model.Ingredient
	ordered []*model.Ingredient
}

// NewCatalog builds the catalog from the built-in definitions.
// Every name constant must be defined exactly once.
func NewCatalog() (*Catalog, error) {
	return newCatalog(ingredientDefs)
}

func newCatalog(defs []ingredientDef) (*Catalog, error) {
	c := &Catalog{
		byName:  make(map[string]*model.Ingredient, len(defs)),
		ordered: make([]*model.Ingredient, 0, len(defs)),
	}

	for i, def := range defs {
		if !IsValidIngredientName(def.name) {
			return nil, fmt.Errorf("ingredient def %d: unknown name %q", i, def.name)
		}
		if _, dup := c.byName[def.name]; dup {
			return nil, fmt.Errorf("ingredient def %d: duplicate name %q", i, def.name)
		}
		ing, err := model.NewIngredient(def.name, DisplayName(def.name), def.family, def.subFamily, def.description)
		if err != nil {
			return nil, fmt.Errorf("ingredient def %d: %w", i, err)
		}
		c.byName[def.name] = ing
	}

	// Порядок каталога фиксирован константами, а не порядком defs.
	for _, name := range allIngredientNames {
		ing, ok := c.byName[name]
		if !ok {
			return nil, fmt.Errorf("ingredient %q has no definition", name)
		}
		c.ordered = append(c.ordered, ing)
	}

	slog.Info("loaded ingredients", "count", len(c.ordered))
	return c, nil
}

// Get returns the ingredient with the exact catalog name.
func (c *Catalog) Get(name string) (*model.Ingredient, bool) {
	ing, ok := c.byName[name]
	return ing, ok
}

// Lookup resolves a constant or display label; unknown input yields the default
// ingredient. Never returns nil.
func (c *Catalog) Lookup(name string) *model.Ingredient {
	resolved, _ := ResolveIngredientName(name)
	return c.byName[resolved]
}

// Default returns the fallback ingredient.
func (c *Catalog) Default() *model.Ingredient {
	return c.byName[DefaultIngredientName]
}

// All returns every ingredient in catalog order.
func (c *Catalog) All() []*model.Ingredient {
	out := make([]*model.Ingredient, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByFamily returns the ingredients of one family in catalog order.
func (c *Catalog) ByFamily(family model.Family) []*model.Ingredient {
	var out []*model.Ingredient
	for _, ing := range c.ordered {
		if ing.Family() == family {
			out = append(out, ing)
		}
	}
	return out
}

// Len returns the number of ingredients.
func (c *Catalog) Len() int {
	return len(c.ordered)
}
