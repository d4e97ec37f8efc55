package potion

import (
	"github.com/udisondev/cauldron/internal/model"
)

// MagicType classifies a brew by the set of magic sub-families it contains.
// The presentation layer picks the brewing animation from it.
type MagicType int8

const (
	MagicNone MagicType = iota
	MagicPlant
	MagicAnimal
	MagicMineral
	MagicPlantAnimal
	MagicPlantMineral
	MagicAnimalMineral
	MagicPlantAnimalMineral
)

// bit per sub-family → тип
var magicBySet = [8]MagicType{
	0b000: MagicNone,
	0b001: MagicPlant,
	0b010: MagicAnimal,
	0b100: MagicMineral,
	0b011: MagicPlantAnimal,
	0b101: MagicPlantMineral,
	0b110: MagicAnimalMineral,
	0b111: MagicPlantAnimalMineral,
}

// ClassifyMagic returns the magic type of a multiset. Natural ingredients never count.
func ClassifyMagic(ingredients []*model.Ingredient) MagicType {
	var set uint8
	for _, ing := range ingredients {
		if ing.IsMagic() {
			set |= 1 << ing.SubFamily()
		}
	}
	return magicBySet[set]
}

func (m MagicType) String() string {
	switch m {
	case MagicNone:
		return "None"
	case MagicPlant:
		return "Plant"
	case MagicAnimal:
		return "Animal"
	case MagicMineral:
		return "Mineral"
	case MagicPlantAnimal:
		return "Plant+Animal"
	case MagicPlantMineral:
		return "Plant+Mineral"
	case MagicAnimalMineral:
		return "Animal+Mineral"
	case MagicPlantAnimalMineral:
		return "Plant+Animal+Mineral"
	default:
		return "Unknown"
	}
}
