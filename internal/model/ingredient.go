package model

import (
	"fmt"
	"slices"
)

// Ingredient — неизменяемое описание ингредиента из каталога.
// Экземпляры принадлежат каталогу (data.Catalog) и передаются по указателю.
type Ingredient struct {
	name        string
	displayName string
	family      Family
	subFamily   SubFamily
	description string
}

// NewIngredient создаёт ингредиент с валидацией классификации.
// Name validity against the catalog is enforced by data.NewIngredient, not here.
func NewIngredient(name, displayName string, family Family, subFamily SubFamily, description string) (*Ingredient, error) {
	if name == "" {
		return nil, fmt.Errorf("ingredient name cannot be empty")
	}
	if !family.Valid() {
		return nil, fmt.Errorf("ingredient %q: invalid family %d", name, family)
	}
	if !subFamily.Valid() {
		return nil, fmt.Errorf("ingredient %q: invalid sub-family %d", name, subFamily)
	}
	if displayName == "" {
		displayName = name
	}
	return &Ingredient{
		name:        name,
		displayName: displayName,
		family:      family,
		subFamily:   subFamily,
		description: description,
	}, nil
}

// Name returns the catalog constant (e.g. "illusion_herb").
func (i *Ingredient) Name() string { return i.name }

// DisplayName returns the human-readable label.
func (i *Ingredient) DisplayName() string { return i.displayName }

// Family returns Magic or Natural.
func (i *Ingredient) Family() Family { return i.family }

// SubFamily returns Plant, Animal or Mineral.
func (i *Ingredient) SubFamily() SubFamily { return i.subFamily }

// Description returns the free-text description.
func (i *Ingredient) Description() string { return i.description }

// IsMagic reports whether the ingredient belongs to the Magic family.
func (i *Ingredient) IsMagic() bool { return i.family == FamilyMagic }

// String returns "name (Family Sub)" for logs.
func (i *Ingredient) String() string {
	return fmt.Sprintf("%s (%s %s)", i.name, i.family, i.subFamily)
}

// CountByFamily counts ingredients of the given family.
func CountByFamily(ingredients []*Ingredient, family Family) int {
	count := 0
	for _, ing := range ingredients {
		if ing.family == family {
			count++
		}
	}
	return count
}

// CountBySubFamily counts ingredients of the given sub-family regardless of family.
func CountBySubFamily(ingredients []*Ingredient, subFamily SubFamily) int {
	count := 0
	for _, ing := range ingredients {
		if ing.subFamily == subFamily {
			count++
		}
	}
	return count
}

// HasMagic reports whether at least one ingredient is Magic.
func HasMagic(ingredients []*Ingredient) bool {
	for _, ing := range ingredients {
		if ing.family == FamilyMagic {
			return true
		}
	}
	return false
}

// ContainsIngredient reports whether an ingredient with the given name is present.
func ContainsIngredient(ingredients []*Ingredient, name string) bool {
	for _, ing := range ingredients {
		if ing.name == name {
			return true
		}
	}
	return false
}

// IngredientNames returns the names in input order.
func IngredientNames(ingredients []*Ingredient) []string {
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.name)
	}
	return names
}

// SameIngredients reports whether two multisets hold the same named ingredients,
// ignoring order.
func SameIngredients(a, b []*Ingredient) bool {
	if len(a) != len(b) {
		return false
	}
	na := IngredientNames(a)
	nb := IngredientNames(b)
	slices.Sort(na)
	slices.Sort(nb)
	return slices.Equal(na, nb)
}
