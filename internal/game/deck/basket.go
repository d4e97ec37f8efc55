package deck

import (
	"errors"
	"fmt"
	"sync"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/model"
)

var ErrInvalidSelection = errors.New("invalid ingredient selection")

// Basket is the player's hand of ingredient cards.
type Basket struct {
	mu   sync.Mutex
	deck *Deck
	size int
	hand []*model.Ingredient
}

// NewBasket creates an empty basket. Non-positive size means data.DefaultHandSize.
func NewBasket(d *Deck, size int) *Basket {
	if size <= 0 {
		size = data.DefaultHandSize
	}
	return &Basket{deck: d, size: size, hand: make([]*model.Ingredient, 0, size)}
}

// Fill draws until the hand is full or the deck runs out. Returns the number drawn.
func (b *Basket) Fill() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	drawn := 0
	for len(b.hand) < b.size {
		card, ok := b.deck.Draw()
		if !ok {
			break
		}
		b.hand = append(b.hand, card)
		drawn++
	}
	return drawn
}

// Hand returns a copy of the current hand.
func (b *Basket) Hand() []*model.Ingredient {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*model.Ingredient, len(b.hand))
	copy(out, b.hand)
	return out
}

// Size returns the hand capacity.
func (b *Basket) Size() int {
	return b.size
}

// Peek returns the cards at indices without removing them.
// Uses the same selection rules as Take.
func (b *Basket) Peek(indices []int) ([]*model.Ingredient, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkSelection(indices); err != nil {
		return nil, err
	}
	out := make([]*model.Ingredient, 0, len(indices))
	for _, i := range indices {
		out = append(out, b.hand[i])
	}
	return out, nil
}

// Take removes the cards at indices and returns them in the given order.
// Each used slot gets a fresh card from the deck; when the deck is empty the
// slot is dropped and the remaining cards close the gap.
func (b *Basket) Take(indices []int) ([]*model.Ingredient, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkSelection(indices); err != nil {
		return nil, err
	}

	taken := make([]*model.Ingredient, 0, len(indices))
	for _, i := range indices {
		taken = append(taken, b.hand[i])
		b.hand[i] = nil
	}

	// Замена на месте, затем сжатие пустых слотов
	for i := range b.hand {
		if b.hand[i] != nil {
			continue
		}
		if card, ok := b.deck.Draw(); ok {
			b.hand[i] = card
		}
	}
	compact := b.hand[:0]
	for _, card := range b.hand {
		if card != nil {
			compact = append(compact, card)
		}
	}
	clear(b.hand[len(compact):])
	b.hand = compact

	return taken, nil
}

// checkSelection rejects empty, out-of-range and repeated indices. Caller holds mu.
func (b *Basket) checkSelection(indices []int) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: nothing selected", ErrInvalidSelection)
	}

	seen := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(b.hand) {
			return fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSelection, i, len(b.hand))
		}
		if _, dup := seen[i]; dup {
			return fmt.Errorf("%w: index %d selected twice", ErrInvalidSelection, i)
		}
		seen[i] = struct{}{}
	}
	return nil
}
