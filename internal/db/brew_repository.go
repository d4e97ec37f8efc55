package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BrewRow represents one journal entry.
type BrewRow struct {
	ID          int64
	PotionID    string
	RecipeName  string
	Level       int32
	Duration    int32
	MagicType   string
	Ingredients []string
	BrewedAt    time.Time
}

// CodexEntry summarizes every brew of one potion identity.
type CodexEntry struct {
	PotionID    string
	RecipeName  string // name of the first brew
	Count       int64
	FirstBrewed time.Time
	LastBrewed  time.Time
}

// BrewRepository stores the brew journal.
type BrewRepository struct {
	db *pgxpool.Pool
}

// NewBrewRepository creates a new BrewRepository.
func NewBrewRepository(db *pgxpool.Pool) *BrewRepository {
	return &BrewRepository{db: db}
}

// Record inserts a single brew.
func (r *BrewRepository) Record(ctx context.Context, row BrewRow) error {
	if row.BrewedAt.IsZero() {
		row.BrewedAt = time.Now()
	}
	if row.Ingredients == nil {
		row.Ingredients = []string{}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO brew_log (potion_id, recipe_name, level, duration, magic_type, ingredients, brewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		row.PotionID, row.RecipeName, row.Level, row.Duration, row.MagicType, row.Ingredients, row.BrewedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting brew %s: %w", row.PotionID, err)
	}
	return nil
}

// Recent returns the latest brews, newest first.
func (r *BrewRepository) Recent(ctx context.Context, limit int) ([]BrewRow, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `
		SELECT id, potion_id, recipe_name, level, duration, magic_type, ingredients, brewed_at
		FROM brew_log
		ORDER BY brewed_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent brews: %w", err)
	}
	defer rows.Close()

	brews := make([]BrewRow, 0, limit)
	for rows.Next() {
		var b BrewRow
		if err := rows.Scan(&b.ID, &b.PotionID, &b.RecipeName, &b.Level, &b.Duration,
			&b.MagicType, &b.Ingredients, &b.BrewedAt); err != nil {
			return nil, fmt.Errorf("scanning brew row: %w", err)
		}
		brews = append(brews, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brew rows: %w", err)
	}

	return brews, nil
}

// Codex returns one entry per distinct potion identity, ordered by identity.
func (r *BrewRepository) Codex(ctx context.Context) ([]CodexEntry, error) {
	query := `
		SELECT potion_id,
		       (array_agg(recipe_name ORDER BY brewed_at, id))[1],
		       count(*),
		       min(brewed_at),
		       max(brewed_at)
		FROM brew_log
		GROUP BY potion_id
		ORDER BY potion_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying codex: %w", err)
	}
	defer rows.Close()

	entries := make([]CodexEntry, 0, 32)
	for rows.Next() {
		var e CodexEntry
		if err := rows.Scan(&e.PotionID, &e.RecipeName, &e.Count, &e.FirstBrewed, &e.LastBrewed); err != nil {
			return nil, fmt.Errorf("scanning codex row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating codex rows: %w", err)
	}

	return entries, nil
}
