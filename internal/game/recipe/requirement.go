package recipe

import (
	"fmt"

	"github.com/udisondev/cauldron/internal/model"
)

// MatchMode selects which classification a Requirement counts by.
type MatchMode int8

const (
	ByFamily MatchMode = iota
	BySubFamily
	ByFamilyAndSubFamily
)

// String returns the mode name used in recipe files.
func (m MatchMode) String() string {
	switch m {
	case ByFamily:
		return "family"
	case BySubFamily:
		return "sub_family"
	case ByFamilyAndSubFamily:
		return "family_and_sub_family"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a defined mode.
func (m MatchMode) Valid() bool {
	return m >= ByFamily && m <= ByFamilyAndSubFamily
}

// MarshalText implements encoding.TextMarshaler.
func (m MatchMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid match mode %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MatchMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "family":
		*m = ByFamily
	case "sub_family":
		*m = BySubFamily
	case "family_and_sub_family":
		*m = ByFamilyAndSubFamily
	default:
		return fmt.Errorf("unknown match mode %q", text)
	}
	return nil
}

// Requirement — одно ограничение рецепта: число ингредиентов, подходящих под
// предикат Mode, должно лежать в [MinCount, MaxCount] включительно.
type Requirement struct {
	Mode      MatchMode       `yaml:"match_mode"`
	Family    model.Family    `yaml:"family"`
	SubFamily model.SubFamily `yaml:"sub_family"`
	MinCount  int             `yaml:"min_count"`
	MaxCount  int             `yaml:"max_count"`
}

// Accepts reports whether a single ingredient falls under the requirement's predicate.
func (r Requirement) Accepts(ing *model.Ingredient) bool {
	switch r.Mode {
	case ByFamily:
		return ing.Family() == r.Family
	case BySubFamily:
		return ing.SubFamily() == r.SubFamily
	case ByFamilyAndSubFamily:
		return ing.Family() == r.Family && ing.SubFamily() == r.SubFamily
	default:
		return false
	}
}

// Count returns how many ingredients of the multiset fall under the predicate.
func (r Requirement) Count(ingredients []*model.Ingredient) int {
	count := 0
	for _, ing := range ingredients {
		if r.Accepts(ing) {
			count++
		}
	}
	return count
}

// SatisfiedBy reports whether the predicate count lies within [MinCount, MaxCount].
func (r Requirement) SatisfiedBy(ingredients []*model.Ingredient) bool {
	count := r.Count(ingredients)
	return count >= r.MinCount && count <= r.MaxCount
}

// Validate rejects unknown modes, unknown targets and negative or inverted bounds.
func (r Requirement) Validate() error {
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: match mode %d", ErrInvalidRequirement, r.Mode)
	}
	if r.Mode != BySubFamily && !r.Family.Valid() {
		return fmt.Errorf("%w: family %d", ErrInvalidRequirement, r.Family)
	}
	if r.Mode != ByFamily && !r.SubFamily.Valid() {
		return fmt.Errorf("%w: sub-family %d", ErrInvalidRequirement, r.SubFamily)
	}
	if r.MinCount < 0 || r.MaxCount < 0 {
		return fmt.Errorf("%w: negative bounds [%d, %d]", ErrInvalidRequirement, r.MinCount, r.MaxCount)
	}
	if r.MinCount > r.MaxCount {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidRequirement, r.MinCount, r.MaxCount)
	}
	return nil
}

// String returns a compact form for logs, e.g. "Magic Plant [2,2]".
func (r Requirement) String() string {
	var target string
	switch r.Mode {
	case ByFamily:
		target = r.Family.String()
	case BySubFamily:
		target = "any " + r.SubFamily.String()
	default:
		target = r.Family.String() + " " + r.SubFamily.String()
	}
	return fmt.Sprintf("%s [%d,%d]", target, r.MinCount, r.MaxCount)
}
