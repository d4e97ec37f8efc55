package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/cauldron/internal/data"
)

// Brewery holds all configuration for the brewery host.
type Brewery struct {
	LogLevel string `yaml:"log_level"` // debug|info|warn|error

	// Recipes
	RecipesFile string  `yaml:"recipes_file"` // empty means built-in book
	MatchPolicy string  `yaml:"match_policy"` // first|score
	Scoring     Scoring `yaml:"scoring"`

	// Game
	ShelfCapacity int        `yaml:"shelf_capacity"`
	Deck          DeckConfig `yaml:"deck"`

	// Database (optional brew journal)
	Database DatabaseConfig `yaml:"database"`
}

// Scoring configures the best-score match policy.
type Scoring struct {
	BonusPerExtra int     `yaml:"bonus_per_extra"`
	Multiplier    float64 `yaml:"multiplier"`
}

// DeckConfig configures the ingredient deck and the hand.
type DeckConfig struct {
	CopiesPerIngredient int    `yaml:"copies_per_ingredient"`
	HandSize            int    `yaml:"hand_size"`
	Seed                uint64 `yaml:"seed"` // 0 means random
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultBrewery returns Brewery config with sensible defaults.
func DefaultBrewery() Brewery {
	return Brewery{
		LogLevel:    "info",
		MatchPolicy: "first",
		Scoring: Scoring{
			BonusPerExtra: 10,
			Multiplier:    1.0,
		},
		ShelfCapacity: data.MaxShelves,
		Deck: DeckConfig{
			CopiesPerIngredient: data.DefaultCopiesPerIngredient,
			HandSize:            data.DefaultHandSize,
		},
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "cauldron",
			Password: "cauldron",
			DBName:   "cauldron",
			SSLMode:  "disable",
		},
	}
}

// LoadBrewery loads brewery config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBrewery(path string) (Brewery, error) {
	cfg := DefaultBrewery()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values the loaders cannot default.
func (c Brewery) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch c.MatchPolicy {
	case "", "first", "score":
	default:
		return fmt.Errorf("unknown match_policy %q", c.MatchPolicy)
	}
	if c.ShelfCapacity < 0 {
		return fmt.Errorf("shelf_capacity must not be negative, got %d", c.ShelfCapacity)
	}
	if c.Deck.HandSize < 0 || c.Deck.CopiesPerIngredient < 0 {
		return fmt.Errorf("deck sizes must not be negative")
	}
	if c.Scoring.Multiplier < 0 {
		return fmt.Errorf("scoring multiplier must not be negative, got %v", c.Scoring.Multiplier)
	}
	return nil
}
