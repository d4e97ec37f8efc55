// Package potion holds brewed potion records and the shelf they are stored on.
package potion

import (
	"time"

	"github.com/udisondev/cauldron/internal/game/identity"
	"github.com/udisondev/cauldron/internal/game/recipe"
	"github.com/udisondev/cauldron/internal/model"
)

// Potion is the record of one successful brew.
type Potion struct {
	ID          string // canonical identity, e.g. "MP1NM1"
	Name        string
	Description string
	Level       int
	SubLevel    int
	Duration    int // seconds
	MagicType   MagicType
	Ingredients []string // catalog names, in selection order
	BrewedAt    time.Time
}

// New builds the potion record for a multiset that matched r.
func New(r *recipe.Recipe, ingredients []*model.Ingredient) *Potion {
	return &Potion{
		ID:          identity.Compute(ingredients),
		Name:        r.Name,
		Description: r.Description,
		Level:       r.Level,
		SubLevel:    r.SubLevel,
		Duration:    r.Duration,
		MagicType:   ClassifyMagic(ingredients),
		Ingredients: model.IngredientNames(ingredients),
		BrewedAt:    time.Now(),
	}
}

func (p *Potion) String() string {
	return p.Name + " [" + p.ID + "]"
}
