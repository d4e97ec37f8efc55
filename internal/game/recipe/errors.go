package recipe

import "errors"

var (
	ErrInvalidRequirement = errors.New("invalid category requirement")
	ErrInvalidRecipe      = errors.New("invalid recipe")
	ErrDuplicateRecipe    = errors.New("duplicate recipe name")
	ErrInvalidVector      = errors.New("invalid ingredient vector")
	ErrUnknownPolicy      = errors.New("unknown match policy")
	ErrNilTable           = errors.New("recipe table is nil")
)
