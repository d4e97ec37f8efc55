package recipe

import (
	"sync/atomic"

	"github.com/udisondev/cauldron/internal/model"
)

// Book holds the active recipe table. Reload swaps the whole table atomically;
// matching never blocks.
type Book struct {
	current atomic.Pointer[Table]
}

// NewBook creates a book serving t.
func NewBook(t *Table) (*Book, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	b := &Book{}
	b.current.Store(t)
	return b, nil
}

// Current returns the active table.
func (b *Book) Current() *Table {
	return b.current.Load()
}

// Swap installs t and returns the previous table.
func (b *Book) Swap(t *Table) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	return b.current.Swap(t), nil
}

// Match runs Table.Match on the active table.
func (b *Book) Match(ingredients []*model.Ingredient) (*Recipe, bool) {
	return b.Current().Match(ingredients)
}
