package main

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/udisondev/cauldron/internal/console"
	"github.com/udisondev/cauldron/internal/db"
	"github.com/udisondev/cauldron/internal/game/brew"
)

// brewJournalAdapter adapts db.BrewRepository to brew.Journal.
type brewJournalAdapter struct {
	repo *db.BrewRepository
}

func (a *brewJournalAdapter) Record(ctx context.Context, rec brew.Record) error {
	return a.repo.Record(ctx, db.BrewRow{
		PotionID:    rec.PotionID,
		RecipeName:  rec.RecipeName,
		Level:       int32(rec.Level),
		Duration:    int32(rec.Duration),
		MagicType:   rec.MagicType,
		Ingredients: rec.Ingredients,
		BrewedAt:    rec.BrewedAt,
	})
}

// codexAdapter adapts db.BrewRepository to console.Codex.
type codexAdapter struct {
	repo *db.BrewRepository
}

func (a *codexAdapter) Entries(ctx context.Context) ([]console.CodexEntry, error) {
	rows, err := a.repo.Codex(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]console.CodexEntry, len(rows))
	for i, r := range rows {
		result[i] = console.CodexEntry{
			PotionID:   r.PotionID,
			RecipeName: r.RecipeName,
			Count:      r.Count,
		}
	}
	return result, nil
}

// historyAdapter adapts db.BrewRepository to console.History.
type historyAdapter struct {
	repo *db.BrewRepository
}

func (a *historyAdapter) Recent(ctx context.Context, limit int) ([]console.LogEntry, error) {
	rows, err := a.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	result := make([]console.LogEntry, len(rows))
	for i, r := range rows {
		result[i] = console.LogEntry{
			PotionID:   r.PotionID,
			RecipeName: r.RecipeName,
			BrewedAt:   r.BrewedAt,
		}
	}
	return result, nil
}

// memoryLogSize — сколько последних варок помнит memoryJournal.
const memoryLogSize = 100

// memoryJournal keeps the journal in memory when the database is disabled.
// Implements brew.Journal, console.Codex and console.History.
type memoryJournal struct {
	mu   sync.Mutex
	byID map[string]*console.CodexEntry
	log  []console.LogEntry // oldest first
}

func newMemoryJournal() *memoryJournal {
	return &memoryJournal{byID: make(map[string]*console.CodexEntry)}
}

func (m *memoryJournal) Record(_ context.Context, rec brew.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.byID[rec.PotionID]
	if !ok {
		e = &console.CodexEntry{PotionID: rec.PotionID, RecipeName: rec.RecipeName}
		m.byID[rec.PotionID] = e
	}
	e.Count++

	at := rec.BrewedAt
	if at.IsZero() {
		at = time.Now()
	}
	if len(m.log) == memoryLogSize {
		m.log = slices.Delete(m.log, 0, 1)
	}
	m.log = append(m.log, console.LogEntry{PotionID: rec.PotionID, RecipeName: rec.RecipeName, BrewedAt: at})
	return nil
}

func (m *memoryJournal) Entries(context.Context) ([]console.CodexEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]console.CodexEntry, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b console.CodexEntry) int {
		return cmp.Compare(a.PotionID, b.PotionID)
	})
	return out, nil
}

func (m *memoryJournal) Recent(_ context.Context, limit int) ([]console.LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := min(max(limit, 0), len(m.log))
	out := slices.Clone(m.log[len(m.log)-n:])
	slices.Reverse(out)
	return out, nil
}
