package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/testutil"
)

func TestBasket_FillAndTake(t *testing.T) {
	t.Parallel()

	catalog, err := testutil.Catalog()
	require.NoError(t, err)

	d := New(catalog, 0, seeded())
	b := NewBasket(d, 0)
	require.Equal(t, data.DefaultHandSize, b.Size())

	assert.Equal(t, data.DefaultHandSize, b.Fill())
	assert.Equal(t, 0, b.Fill(), "already full")

	before := b.Hand()
	remaining := d.Remaining()

	taken, err := b.Take([]int{3, 0})
	require.NoError(t, err)
	require.Len(t, taken, 2)
	assert.Same(t, before[3], taken[0])
	assert.Same(t, before[0], taken[1])

	after := b.Hand()
	assert.Len(t, after, data.DefaultHandSize, "hand size kept while the deck lasts")
	assert.Equal(t, remaining-2, d.Remaining())
	// Неиспользованные карты остались на своих местах
	assert.Same(t, before[1], after[1])
	assert.Same(t, before[2], after[2])
	assert.Same(t, before[4], after[4])
}

func TestBasket_Peek(t *testing.T) {
	t.Parallel()

	catalog, err := testutil.Catalog()
	require.NoError(t, err)

	d := New(catalog, 0, seeded())
	b := NewBasket(d, 4)
	b.Fill()
	before := b.Hand()
	remaining := d.Remaining()

	got, err := b.Peek([]int{2, 0})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Same(t, before[2], got[0])
	assert.Same(t, before[0], got[1])

	// Рука и колода не меняются
	assert.Equal(t, before, b.Hand())
	assert.Equal(t, remaining, d.Remaining())
}

func TestBasket_TakeInvalid(t *testing.T) {
	t.Parallel()

	catalog, err := testutil.Catalog()
	require.NoError(t, err)

	b := NewBasket(New(catalog, 1, seeded()), 3)
	b.Fill()

	tests := []struct {
		name    string
		indices []int
	}{
		{"empty", nil},
		{"negative", []int{-1}},
		{"out of range", []int{3}},
		{"duplicate", []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Take(tt.indices)
			assert.ErrorIs(t, err, ErrInvalidSelection)
			_, err = b.Peek(tt.indices)
			assert.ErrorIs(t, err, ErrInvalidSelection)
		})
	}
	assert.Len(t, b.Hand(), 3, "failed take leaves the hand untouched")
}

func TestBasket_DeckRunsOut(t *testing.T) {
	t.Parallel()

	src := fixedSource(testutil.Kinds(t, "MP", "NA"))
	d := New(src, 1, seeded())
	b := NewBasket(d, 5)

	assert.Equal(t, 2, b.Fill())
	hand := b.Hand()
	require.Len(t, hand, 2)

	taken, err := b.Take([]int{0})
	require.NoError(t, err)
	assert.Same(t, hand[0], taken[0])

	after := b.Hand()
	require.Len(t, after, 1, "empty slot compacted away")
	assert.Same(t, hand[1], after[0])

	_, err = b.Take([]int{0})
	require.NoError(t, err)
	assert.Empty(t, b.Hand())
	assert.Equal(t, 0, b.Fill())
}
