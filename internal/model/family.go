package model

import "fmt"

// Family — верхний уровень классификации ингредиента.
type Family int8

const (
	FamilyNatural Family = iota
	FamilyMagic
)

// Families lists every family in catalog order (Magic first).
var Families = [...]Family{FamilyMagic, FamilyNatural}

// String returns the family name used in identities and recipe files.
func (f Family) String() string {
	switch f {
	case FamilyMagic:
		return "Magic"
	case FamilyNatural:
		return "Natural"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the defined families.
func (f Family) Valid() bool {
	return f == FamilyMagic || f == FamilyNatural
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid family %d", f)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFamily parses "Magic" or "Natural" (case-sensitive as written in recipe files,
// lower-case accepted too).
func ParseFamily(s string) (Family, error) {
	switch s {
	case "Magic", "magic":
		return FamilyMagic, nil
	case "Natural", "natural":
		return FamilyNatural, nil
	default:
		return 0, fmt.Errorf("unknown family %q", s)
	}
}

// SubFamily — вторичная классификация: растение, животное, минерал.
type SubFamily int8

const (
	SubFamilyPlant SubFamily = iota
	SubFamilyAnimal
	SubFamilyMineral
)

// SubFamilyCount is the number of sub-families; SubFamily values index [SubFamilyCount]T arrays.
const SubFamilyCount = 3

// SubFamilies lists every sub-family in catalog order.
var SubFamilies = [SubFamilyCount]SubFamily{SubFamilyPlant, SubFamilyAnimal, SubFamilyMineral}

// String returns the sub-family name.
func (s SubFamily) String() string {
	switch s {
	case SubFamilyPlant:
		return "Plant"
	case SubFamilyAnimal:
		return "Animal"
	case SubFamilyMineral:
		return "Mineral"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined sub-families.
func (s SubFamily) Valid() bool {
	return s >= SubFamilyPlant && s <= SubFamilyMineral
}

// MarshalText implements encoding.TextMarshaler.
func (s SubFamily) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sub-family %d", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SubFamily) UnmarshalText(text []byte) error {
	parsed, err := ParseSubFamily(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSubFamily parses "Plant", "Animal" or "Mineral".
func ParseSubFamily(s string) (SubFamily, error) {
	switch s {
	case "Plant", "plant":
		return SubFamilyPlant, nil
	case "Animal", "animal":
		return SubFamilyAnimal, nil
	case "Mineral", "mineral":
		return SubFamilyMineral, nil
	default:
		return 0, fmt.Errorf("unknown sub-family %q", s)
	}
}
