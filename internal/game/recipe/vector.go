package recipe

import (
	"fmt"
	"strings"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/game/identity"
	"github.com/udisondev/cauldron/internal/model"
)

// Derivation constants for vector recipes.
const (
	magicPoints          = 2 // level points per Magic ingredient in a sub-family bucket
	naturalPoints        = 1
	mineralDurationBonus = 2 // seconds per Magic Mineral
	multiDurationBonus   = 1 // seconds for any recipe with more than one ingredient
)

// Vector is the compact recipe form: ingredient counts per sub-family, split by family.
// Indexed by model.SubFamily.
type Vector struct {
	Magic   [model.SubFamilyCount]int
	Natural [model.SubFamilyCount]int
}

// Total returns the number of ingredients the vector describes.
func (v Vector) Total() int {
	return v.MagicTotal() + v.NaturalTotal()
}

func (v Vector) MagicTotal() int {
	n := 0
	for _, c := range v.Magic {
		n += c
	}
	return n
}

func (v Vector) NaturalTotal() int {
	n := 0
	for _, c := range v.Natural {
		n += c
	}
	return n
}

// Identity returns the canonical potion ID of the composition.
func (v Vector) Identity() string {
	counts := make(map[string]int, 2*model.SubFamilyCount)
	for _, s := range model.SubFamilies {
		counts[identity.Key(model.FamilyMagic, s)] = v.Magic[s]
		counts[identity.Key(model.FamilyNatural, s)] = v.Natural[s]
	}
	return identity.FromCounts(counts)
}

// Validate rejects negative counts and the empty vector.
func (v Vector) Validate() error {
	for _, s := range model.SubFamilies {
		if v.Magic[s] < 0 || v.Natural[s] < 0 {
			return fmt.Errorf("%w: negative count for %s", ErrInvalidVector, s)
		}
	}
	if v.Total() == 0 {
		return fmt.Errorf("%w: no ingredients", ErrInvalidVector)
	}
	return nil
}

// VectorOf tallies a multiset into a Vector.
func VectorOf(ingredients []*model.Ingredient) Vector {
	var v Vector
	for _, ing := range ingredients {
		if ing.IsMagic() {
			v.Magic[ing.SubFamily()]++
		} else {
			v.Natural[ing.SubFamily()]++
		}
	}
	return v
}

// FromVector builds an exact recipe: one requirement per non-zero bucket with
// min = max = count, total bounds equal to the vector total. Name, description,
// level, sub-level and duration are derived from the vector.
func FromVector(v Vector) (*Recipe, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var reqs []Requirement
	for _, s := range model.SubFamilies {
		if n := v.Magic[s]; n > 0 {
			reqs = append(reqs, Magic(s, n, n))
		}
	}
	for _, s := range model.SubFamilies {
		if n := v.Natural[s]; n > 0 {
			reqs = append(reqs, Natural(s, n, n))
		}
	}

	total := v.Total()
	return New(DeriveName(v), DeriveDescription(v),
		WithID(v.Identity()),
		WithIngredients(total, total),
		WithRequirements(reqs...),
		WithLevel(DeriveLevel(v)),
		WithSubLevel(DeriveSubLevel(v)),
		WithDuration(DeriveDuration(v)),
	), nil
}

// DeriveLevel: per sub-family bucket, Magic counts 2 points and Natural 1;
// the level is the best bucket, clamped to the potion level range.
func DeriveLevel(v Vector) int {
	best := 0
	for _, s := range model.SubFamilies {
		best = max(best, magicPoints*v.Magic[s]+naturalPoints*v.Natural[s])
	}
	return clamp(best, data.MinPotionLevel, data.MaxPotionLevel)
}

// DeriveSubLevel is the number of distinct sub-families used.
func DeriveSubLevel(v Vector) int {
	used := 0
	for _, s := range model.SubFamilies {
		if v.Magic[s]+v.Natural[s] > 0 {
			used++
		}
	}
	return clamp(used, data.MinPotionSubLevel, data.MaxPotionSubLevel)
}

// DeriveDuration: base duration, plus a bonus per Magic Mineral, plus a bonus
// when more than one ingredient is used.
func DeriveDuration(v Vector) int {
	d := data.DefaultPotionDuration + mineralDurationBonus*v.Magic[model.SubFamilyMineral]
	if v.Total() > 1 {
		d += multiDurationBonus
	}
	return clamp(d, data.MinPotionDuration, data.MaxPotionDuration)
}

var multiplicity = [...]string{"", "", "Double ", "Triple ", "Quadruple "}

func countedName(n int, sub model.SubFamily) string {
	if n < len(multiplicity) {
		return multiplicity[n] + sub.String()
	}
	return fmt.Sprintf("%dx %s", n, sub)
}

// DeriveName is injective over vectors: "Double Plant-Animal Potion with Mineral".
func DeriveName(v Vector) string {
	var magic, natural []string
	for _, s := range model.SubFamilies {
		if n := v.Magic[s]; n > 0 {
			magic = append(magic, countedName(n, s))
		}
		if n := v.Natural[s]; n > 0 {
			natural = append(natural, countedName(n, s))
		}
	}

	var b strings.Builder
	if len(magic) == 0 {
		b.WriteString("Mundane")
	} else {
		b.WriteString(strings.Join(magic, "-"))
	}
	b.WriteString(" Potion")
	if len(natural) > 0 {
		b.WriteString(" with ")
		b.WriteString(strings.Join(natural, " and "))
	}
	return b.String()
}

// DeriveDescription: "Brewed from 2 magic plant and 1 natural mineral."
func DeriveDescription(v Vector) string {
	var parts []string
	for _, s := range model.SubFamilies {
		if n := v.Magic[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d magic %s", n, strings.ToLower(s.String())))
		}
	}
	for _, s := range model.SubFamilies {
		if n := v.Natural[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d natural %s", n, strings.ToLower(s.String())))
		}
	}
	if len(parts) == 0 {
		return ""
	}

	var list string
	switch len(parts) {
	case 1:
		list = parts[0]
	default:
		list = strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
	return "Brewed from " + list + "."
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
