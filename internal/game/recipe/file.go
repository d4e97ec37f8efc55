package recipe

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/model"
)

// tableFile is the on-disk layout of a recipe file.
type tableFile struct {
	Recipes []*Recipe `yaml:"recipes"`
}

// rawTableFile mirrors tableFile for decoding. Pointer fields tell a missing
// key apart from an explicit zero value.
type rawTableFile struct {
	Recipes []*rawRecipe `yaml:"recipes"`
}

type rawRecipe struct {
	ID             string           `yaml:"id"`
	Name           string           `yaml:"name"`
	Description    string           `yaml:"description"`
	MinIngredients int              `yaml:"min_ingredients"`
	MaxIngredients int              `yaml:"max_ingredients"`
	Requirements   []rawRequirement `yaml:"requirements"`
	Level          int              `yaml:"level"`
	SubLevel       *int             `yaml:"sub_level"`
	Duration       *int             `yaml:"duration"`
	BaseScore      *int             `yaml:"base_score"`
}

type rawRequirement struct {
	Mode      *MatchMode       `yaml:"match_mode"`
	Family    *model.Family    `yaml:"family"`
	SubFamily *model.SubFamily `yaml:"sub_family"`
	MinCount  int              `yaml:"min_count"`
	MaxCount  int              `yaml:"max_count"`
}

// requirement checks that every key the match mode reads is present.
func (rr rawRequirement) requirement() (Requirement, error) {
	if rr.Mode == nil {
		return Requirement{}, fmt.Errorf("%w: match_mode is required", ErrInvalidRequirement)
	}
	req := Requirement{Mode: *rr.Mode, MinCount: rr.MinCount, MaxCount: rr.MaxCount}
	if req.Mode != BySubFamily {
		if rr.Family == nil {
			return Requirement{}, fmt.Errorf("%w: family is required for match_mode %s", ErrInvalidRequirement, req.Mode)
		}
		req.Family = *rr.Family
	}
	if req.Mode != ByFamily {
		if rr.SubFamily == nil {
			return Requirement{}, fmt.Errorf("%w: sub_family is required for match_mode %s", ErrInvalidRequirement, req.Mode)
		}
		req.SubFamily = *rr.SubFamily
	}
	return req, nil
}

// recipe converts the decoded entry. Missing sub_level, duration and
// base_score take the game defaults; explicit values are kept as written.
func (rr *rawRecipe) recipe() (*Recipe, error) {
	r := &Recipe{
		ID:             rr.ID,
		Name:           rr.Name,
		Description:    rr.Description,
		MinIngredients: rr.MinIngredients,
		MaxIngredients: rr.MaxIngredients,
		Level:          rr.Level,
		SubLevel:       valueOr(rr.SubLevel, data.MinPotionSubLevel),
		Duration:       valueOr(rr.Duration, data.DefaultPotionDuration),
		BaseScore:      valueOr(rr.BaseScore, DefaultBaseScore),
	}
	if rr.Requirements != nil {
		r.Requirements = make([]Requirement, 0, len(rr.Requirements))
	}
	for i, raw := range rr.Requirements {
		req, err := raw.requirement()
		if err != nil {
			return nil, fmt.Errorf("recipe %q requirement %d: %w", rr.Name, i, err)
		}
		r.Requirements = append(r.Requirements, req)
	}
	return r, nil
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// ParseTable decodes a YAML (or JSON) recipe document into a validated table.
// Every requirement must name its match_mode and the family and sub_family that
// mode reads.
func ParseTable(raw []byte, selector Selector) (*Table, error) {
	var f rawTableFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decoding recipes: %w", err)
	}

	recipes := make([]*Recipe, len(f.Recipes))
	for i, rr := range f.Recipes {
		if rr == nil {
			continue // NewTable reports the nil entry
		}
		r, err := rr.recipe()
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		recipes[i] = r
	}

	return NewTable(recipes, selector)
}

// LoadTable reads and parses a recipe file.
func LoadTable(path string, selector Selector) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipes %s: %w", path, err)
	}

	t, err := ParseTable(raw, selector)
	if err != nil {
		return nil, fmt.Errorf("parsing recipes %s: %w", path, err)
	}

	slog.Info("loaded recipes", "count", t.Len(), "source", path)
	return t, nil
}

// MarshalTable encodes the table in recipe-file form.
func MarshalTable(t *Table) ([]byte, error) {
	out, err := yaml.Marshal(tableFile{Recipes: t.recipes})
	if err != nil {
		return nil, fmt.Errorf("encoding recipes: %w", err)
	}
	return out, nil
}
