// Package deck implements the ingredient deck and the player's basket (hand).
package deck

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/model"
)

// Source provides the ingredients a deck is built from (data.Catalog).
type Source interface {
	All() []*model.Ingredient
}

// Deck is a pile of ingredient cards drawn at random without replacement.
type Deck struct {
	mu    sync.Mutex
	cards []*model.Ingredient
	rng   *rand.Rand
}

// New builds a deck with copies of every source ingredient.
// Non-positive copies means data.DefaultCopiesPerIngredient; nil rng is seeded randomly.
func New(src Source, copies int, rng *rand.Rand) *Deck {
	if copies <= 0 {
		copies = data.DefaultCopiesPerIngredient
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	all := src.All()
	cards := make([]*model.Ingredient, 0, len(all)*copies)
	for _, ing := range all {
		for range copies {
			cards = append(cards, ing)
		}
	}

	slog.Debug("deck built", "cards", len(cards), "copies", copies)
	return &Deck{cards: cards, rng: rng}
}

// Draw removes and returns a random card. Returns false when the deck is empty.
func (d *Deck) Draw() (*model.Ingredient, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.cards)
	if n == 0 {
		return nil, false
	}
	i := d.rng.IntN(n)
	card := d.cards[i]
	d.cards[i] = d.cards[n-1]
	d.cards[n-1] = nil
	d.cards = d.cards[:n-1]
	return card, true
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cards)
}
