package potion

import (
	"errors"
	"fmt"
	"sync"

	"github.com/udisondev/cauldron/internal/data"
)

var (
	ErrShelfFull   = errors.New("shelf is full")
	ErrInvalidSlot = errors.New("invalid shelf slot")
	ErrSlotEmpty   = errors.New("shelf slot is empty")
)

// Shelf stores brewed potions in a fixed number of slots.
// Safe for concurrent use.
type Shelf struct {
	mu    sync.Mutex
	slots []*Potion
}

// NewShelf creates a shelf. Non-positive capacity means data.MaxShelves.
func NewShelf(capacity int) *Shelf {
	if capacity <= 0 {
		capacity = data.MaxShelves
	}
	return &Shelf{slots: make([]*Potion, capacity)}
}

// Place puts p into the first empty slot and returns the slot index.
func (s *Shelf) Place(p *Potion) (int, error) {
	if p == nil {
		return -1, fmt.Errorf("place: nil potion")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.slots {
		if cur == nil {
			s.slots[i] = p
			return i, nil
		}
	}
	return -1, ErrShelfFull
}

// Replace puts p into slot and returns the potion that was there (nil if the slot was empty).
func (s *Shelf) Replace(slot int, p *Potion) (*Potion, error) {
	if p == nil {
		return nil, fmt.Errorf("replace: nil potion")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSlot(slot); err != nil {
		return nil, err
	}
	old := s.slots[slot]
	s.slots[slot] = p
	return old, nil
}

// Remove empties slot and returns its potion.
func (s *Shelf) Remove(slot int) (*Potion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSlot(slot); err != nil {
		return nil, err
	}
	old := s.slots[slot]
	if old == nil {
		return nil, fmt.Errorf("slot %d: %w", slot, ErrSlotEmpty)
	}
	s.slots[slot] = nil
	return old, nil
}

// Slots returns a snapshot of all slots; empty slots are nil.
func (s *Shelf) Slots() []*Potion {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Potion, len(s.slots))
	copy(out, s.slots)
	return out
}

// Len returns the number of occupied slots.
func (s *Shelf) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, p := range s.slots {
		if p != nil {
			n++
		}
	}
	return n
}

// Full reports whether every slot is occupied.
func (s *Shelf) Full() bool {
	return s.Len() == s.Capacity()
}

func (s *Shelf) Capacity() int {
	return len(s.slots)
}

// caller must hold mu
func (s *Shelf) checkSlot(slot int) error {
	if slot < 0 || slot >= len(s.slots) {
		return fmt.Errorf("slot %d of %d: %w", slot, len(s.slots), ErrInvalidSlot)
	}
	return nil
}
