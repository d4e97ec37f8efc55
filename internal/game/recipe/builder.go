package recipe

import (
	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/model"
)

// Magic requires [min, max] Magic ingredients of the given sub-family.
func Magic(sub model.SubFamily, minCount, maxCount int) Requirement {
	return Requirement{
		Mode:      ByFamilyAndSubFamily,
		Family:    model.FamilyMagic,
		SubFamily: sub,
		MinCount:  minCount,
		MaxCount:  maxCount,
	}
}

// Natural requires [min, max] Natural ingredients of the given sub-family.
func Natural(sub model.SubFamily, minCount, maxCount int) Requirement {
	return Requirement{
		Mode:      ByFamilyAndSubFamily,
		Family:    model.FamilyNatural,
		SubFamily: sub,
		MinCount:  minCount,
		MaxCount:  maxCount,
	}
}

// ByFamilyCount requires [min, max] ingredients of a family, any sub-family.
func ByFamilyCount(family model.Family, minCount, maxCount int) Requirement {
	return Requirement{Mode: ByFamily, Family: family, MinCount: minCount, MaxCount: maxCount}
}

// BySubFamilyCount requires [min, max] ingredients of a sub-family, any family.
func BySubFamilyCount(sub model.SubFamily, minCount, maxCount int) Requirement {
	return Requirement{Mode: BySubFamily, SubFamily: sub, MinCount: minCount, MaxCount: maxCount}
}

func MagicPlant(minCount, maxCount int) Requirement {
	return Magic(model.SubFamilyPlant, minCount, maxCount)
}

func MagicAnimal(minCount, maxCount int) Requirement {
	return Magic(model.SubFamilyAnimal, minCount, maxCount)
}

func MagicMineral(minCount, maxCount int) Requirement {
	return Magic(model.SubFamilyMineral, minCount, maxCount)
}

func NaturalPlant(minCount, maxCount int) Requirement {
	return Natural(model.SubFamilyPlant, minCount, maxCount)
}

func NaturalAnimal(minCount, maxCount int) Requirement {
	return Natural(model.SubFamilyAnimal, minCount, maxCount)
}

func NaturalMineral(minCount, maxCount int) Requirement {
	return Natural(model.SubFamilyMineral, minCount, maxCount)
}

// Option configures a recipe built by New.
type Option func(*Recipe)

// WithIngredients sets the total ingredient bounds.
func WithIngredients(minCount, maxCount int) Option {
	return func(r *Recipe) {
		r.MinIngredients = minCount
		r.MaxIngredients = maxCount
	}
}

// WithRequirements appends category requirements.
func WithRequirements(reqs ...Requirement) Option {
	return func(r *Recipe) {
		r.Requirements = append(r.Requirements, reqs...)
	}
}

func WithLevel(level int) Option {
	return func(r *Recipe) { r.Level = level }
}

func WithSubLevel(subLevel int) Option {
	return func(r *Recipe) { r.SubLevel = subLevel }
}

// WithDuration sets the effect duration in seconds.
func WithDuration(seconds int) Option {
	return func(r *Recipe) { r.Duration = seconds }
}

func WithBaseScore(score int) Option {
	return func(r *Recipe) { r.BaseScore = score }
}

func WithID(id string) Option {
	return func(r *Recipe) { r.ID = id }
}

// New builds a recipe with game defaults: 1..MaxIngredientsPerPotion ingredients,
// level 1, sub-level 1, default duration, DefaultBaseScore. It does not validate;
// NewTable does.
func New(name, description string, opts ...Option) *Recipe {
	r := &Recipe{
		Name:           name,
		Description:    description,
		MinIngredients: data.MinIngredientsPerPotion,
		MaxIngredients: data.MaxIngredientsPerPotion,
		Level:          data.MinPotionLevel,
		SubLevel:       data.MinPotionSubLevel,
		Duration:       data.DefaultPotionDuration,
		BaseScore:      DefaultBaseScore,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
