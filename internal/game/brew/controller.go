// Package brew wires ingredient selection to the recipe book, the shelf and
// the brew journal.
package brew

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/cauldron/internal/game/identity"
	"github.com/udisondev/cauldron/internal/game/potion"
	"github.com/udisondev/cauldron/internal/game/recipe"
	"github.com/udisondev/cauldron/internal/model"
)

var (
	ErrBrewInProgress     = errors.New("brew already in progress")
	ErrNoPending          = errors.New("no potion awaiting a shelf slot")
	ErrPendingReplacement = errors.New("a brewed potion is waiting for a shelf slot")
)

// Matcher picks the recipe for a multiset (recipe.Book, recipe.Table).
type Matcher interface {
	Match(ingredients []*model.Ingredient) (*recipe.Recipe, bool)
}

// Record is one journal entry, written for every successful brew.
type Record struct {
	PotionID    string
	RecipeName  string
	Level       int
	Duration    int
	MagicType   string
	Ingredients []string
	BrewedAt    time.Time
}

// Journal persists brew records (injected dependency).
type Journal interface {
	Record(ctx context.Context, rec Record) error
}

// NopJournal discards records. Used when persistence is disabled.
type NopJournal struct{}

func (NopJournal) Record(context.Context, Record) error { return nil }

// Result is the outcome of a brew attempt.
type Result struct {
	Success  bool
	Identity string         // computed for every attempt, matched or not
	Recipe   *recipe.Recipe // nil on failure
	Potion   *potion.Potion // nil on failure
	Slot     int            // shelf slot, -1 when not placed

	// NeedsReplacement is set when the shelf was full. The potion stays pending
	// until ReplacePending or DiscardPending.
	NeedsReplacement bool
}

// Controller runs brews. Safe for concurrent use; one brew at a time.
type Controller struct {
	matcher Matcher
	shelf   *potion.Shelf
	journal Journal

	mu      sync.Mutex
	brewing bool
	pending *potion.Potion
}

// NewController creates a brew controller. Nil journal means NopJournal.
func NewController(matcher Matcher, shelf *potion.Shelf, journal Journal) *Controller {
	if journal == nil {
		journal = NopJournal{}
	}
	return &Controller{
		matcher: matcher,
		shelf:   shelf,
		journal: journal,
	}
}

// Brew matches the multiset and, on success, records the potion and shelves it.
//
// Rules:
//  1. No match is a normal result (Success=false), not an error
//  2. The journal is written before shelving; a journal error leaves the shelf untouched
//  3. A full shelf parks the potion as pending (NeedsReplacement=true)
//  4. No new brew while a potion is pending
func (c *Controller) Brew(ctx context.Context, ingredients []*model.Ingredient) (*Result, error) {
	c.mu.Lock()
	if c.brewing {
		c.mu.Unlock()
		return nil, ErrBrewInProgress
	}
	if c.pending != nil {
		c.mu.Unlock()
		return nil, ErrPendingReplacement
	}
	c.brewing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.brewing = false
		c.mu.Unlock()
	}()

	result := &Result{
		Identity: identity.Compute(ingredients),
		Slot:     -1,
	}

	r, ok := c.matcher.Match(ingredients)
	if !ok {
		slog.Info("brew failed: no recipe",
			"identity", result.Identity,
			"ingredients", len(ingredients))
		return result, nil
	}

	p := potion.New(r, ingredients)
	if err := c.journal.Record(ctx, recordOf(p)); err != nil {
		slog.Error("recording brew",
			"potion", p.ID,
			"recipe", r.Name,
			"error", err)
		return nil, fmt.Errorf("record brew %s: %w", p.ID, err)
	}

	result.Success = true
	result.Recipe = r
	result.Potion = p

	slot, err := c.shelf.Place(p)
	switch {
	case errors.Is(err, potion.ErrShelfFull):
		c.mu.Lock()
		c.pending = p
		c.mu.Unlock()
		result.NeedsReplacement = true
		slog.Info("potion brewed, shelf full",
			"potion", p.ID,
			"recipe", r.Name)
	case err != nil:
		return nil, fmt.Errorf("shelve potion %s: %w", p.ID, err)
	default:
		result.Slot = slot
		slog.Info("potion brewed",
			"potion", p.ID,
			"recipe", r.Name,
			"slot", slot,
			"magicType", p.MagicType.String())
	}

	return result, nil
}

// Pending returns the potion waiting for a shelf slot, or nil.
func (c *Controller) Pending() *potion.Potion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// ReplacePending puts the pending potion into slot and returns the potion it displaced.
func (c *Controller) ReplacePending(slot int) (*potion.Potion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return nil, ErrNoPending
	}
	old, err := c.shelf.Replace(slot, c.pending)
	if err != nil {
		return nil, fmt.Errorf("replace slot %d: %w", slot, err)
	}

	slog.Info("potion replaced",
		"slot", slot,
		"new", c.pending.ID,
		"old", potionID(old))
	c.pending = nil
	return old, nil
}

// DiscardPending drops the pending potion and returns it.
func (c *Controller) DiscardPending() (*potion.Potion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return nil, ErrNoPending
	}
	p := c.pending
	c.pending = nil
	slog.Info("potion discarded", "potion", p.ID)
	return p, nil
}

// Shelf returns the controller's shelf.
func (c *Controller) Shelf() *potion.Shelf {
	return c.shelf
}

func recordOf(p *potion.Potion) Record {
	return Record{
		PotionID:    p.ID,
		RecipeName:  p.Name,
		Level:       p.Level,
		Duration:    p.Duration,
		MagicType:   p.MagicType.String(),
		Ingredients: p.Ingredients,
		BrewedAt:    p.BrewedAt,
	}
}

func potionID(p *potion.Potion) string {
	if p == nil {
		return ""
	}
	return p.ID
}
