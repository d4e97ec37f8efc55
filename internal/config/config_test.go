package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBrewery_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadBrewery(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBrewery(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadBrewery_Overrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brewery.yaml")
	raw := `
log_level: debug
recipes_file: config/recipes.yaml
match_policy: score
scoring:
  bonus_per_extra: 25
  multiplier: 1.5
shelf_capacity: 5
deck:
  hand_size: 6
  seed: 42
database:
  enabled: true
  host: db
  dbname: brews
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadBrewery(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "config/recipes.yaml", cfg.RecipesFile)
	assert.Equal(t, "score", cfg.MatchPolicy)
	assert.Equal(t, Scoring{BonusPerExtra: 25, Multiplier: 1.5}, cfg.Scoring)
	assert.Equal(t, 5, cfg.ShelfCapacity)
	assert.Equal(t, 6, cfg.Deck.HandSize)
	assert.Equal(t, uint64(42), cfg.Deck.Seed)
	// Не заданные в файле поля сохраняют значения по умолчанию
	assert.Equal(t, DefaultBrewery().Deck.CopiesPerIngredient, cfg.Deck.CopiesPerIngredient)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://cauldron:cauldron@db:5432/brews?sslmode=disable", cfg.Database.DSN())
}

func TestLoadBrewery_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"bad yaml", "log_level: [unterminated"},
		{"unknown policy", "match_policy: random"},
		{"unknown log level", "log_level: loud"},
		{"negative shelf", "shelf_capacity: -1"},
		{"negative multiplier", "scoring:\n  multiplier: -2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "brewery.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.raw), 0o644))
			_, err := LoadBrewery(path)
			assert.Error(t, err)
		})
	}
}
