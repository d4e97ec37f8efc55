package brew

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cauldron/internal/game/potion"
	"github.com/udisondev/cauldron/internal/game/recipe"
	"github.com/udisondev/cauldron/internal/testutil"
)

// mockJournal реализует Journal для тестов.
type mockJournal struct {
	mu      sync.Mutex
	records []Record
	err     error         // если != nil, Record возвращает эту ошибку
	block   chan struct{} // если != nil, Record ждёт закрытия
	entered chan struct{}
}

func (m *mockJournal) Record(_ context.Context, rec Record) error {
	if m.entered != nil {
		close(m.entered)
	}
	if m.block != nil {
		<-m.block
	}
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *mockJournal) all() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Record(nil), m.records...)
}

func newTestController(t *testing.T, capacity int, journal Journal) *Controller {
	t.Helper()
	tbl, err := recipe.DefaultTable(nil)
	require.NoError(t, err)
	book, err := recipe.NewBook(tbl)
	require.NoError(t, err)
	return NewController(book, potion.NewShelf(capacity), journal)
}

func TestController_BrewSuccess(t *testing.T) {
	t.Parallel()

	j := &mockJournal{}
	c := newTestController(t, 3, j)

	res, err := c.Brew(context.Background(), testutil.Kinds(t, "MP", "NM"))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "MP1NM1", res.Identity)
	assert.Equal(t, "Plant Potion with Mineral", res.Recipe.Name)
	assert.Equal(t, 0, res.Slot)
	assert.False(t, res.NeedsReplacement)
	assert.Equal(t, res.Identity, res.Potion.ID)
	assert.Equal(t, potion.MagicPlant, res.Potion.MagicType)

	recs := j.all()
	require.Len(t, recs, 1)
	assert.Equal(t, "MP1NM1", recs[0].PotionID)
	assert.Equal(t, "Plant", recs[0].MagicType)
	assert.Equal(t, res.Potion.Ingredients, recs[0].Ingredients)
	assert.Equal(t, 1, c.Shelf().Len())
}

func TestController_BrewNoMatch(t *testing.T) {
	t.Parallel()

	j := &mockJournal{}
	c := newTestController(t, 3, j)

	tests := []struct {
		name     string
		keys     []string
		identity string
	}{
		{"natural only", []string{"NP", "NA"}, "NA1NP1"},
		{"empty", nil, ""},
		{"too many", []string{"MP", "MP", "MA", "NM", "NP"}, "MA1MP2NM1NP1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Brew(context.Background(), testutil.Kinds(t, tt.keys...))
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tt.identity, res.Identity)
			assert.Nil(t, res.Potion)
			assert.Equal(t, -1, res.Slot)
		})
	}
	assert.Empty(t, j.all())
	assert.Equal(t, 0, c.Shelf().Len())
}

func TestController_ShelfFullReplaceFlow(t *testing.T) {
	t.Parallel()

	c := newTestController(t, 1, nil)
	ctx := context.Background()

	first, err := c.Brew(ctx, testutil.Kinds(t, "MP"))
	require.NoError(t, err)
	require.Equal(t, 0, first.Slot)

	second, err := c.Brew(ctx, testutil.Kinds(t, "MA"))
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.True(t, second.NeedsReplacement)
	assert.Equal(t, -1, second.Slot)
	assert.Same(t, second.Potion, c.Pending())

	_, err = c.Brew(ctx, testutil.Kinds(t, "MM"))
	assert.ErrorIs(t, err, ErrPendingReplacement)

	_, err = c.ReplacePending(4)
	assert.ErrorIs(t, err, potion.ErrInvalidSlot)
	assert.NotNil(t, c.Pending(), "failed replace keeps the potion pending")

	old, err := c.ReplacePending(0)
	require.NoError(t, err)
	assert.Same(t, first.Potion, old)
	assert.Nil(t, c.Pending())
	assert.Same(t, second.Potion, c.Shelf().Slots()[0])

	_, err = c.ReplacePending(0)
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestController_DiscardPending(t *testing.T) {
	t.Parallel()

	c := newTestController(t, 1, nil)
	ctx := context.Background()

	_, err := c.DiscardPending()
	assert.ErrorIs(t, err, ErrNoPending)

	_, err = c.Brew(ctx, testutil.Kinds(t, "MP"))
	require.NoError(t, err)
	res, err := c.Brew(ctx, testutil.Kinds(t, "MM", "MM"))
	require.NoError(t, err)
	require.True(t, res.NeedsReplacement)

	p, err := c.DiscardPending()
	require.NoError(t, err)
	assert.Same(t, res.Potion, p)
	assert.Nil(t, c.Pending())
	assert.Equal(t, "MP1", c.Shelf().Slots()[0].ID)

	// После discard можно варить снова
	_, err = c.Brew(ctx, testutil.Kinds(t, "MP"))
	assert.NoError(t, err)
}

func TestController_JournalError(t *testing.T) {
	t.Parallel()

	journalErr := errors.New("db down")
	c := newTestController(t, 3, &mockJournal{err: journalErr})

	res, err := c.Brew(context.Background(), testutil.Kinds(t, "MP"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, journalErr)
	assert.Equal(t, 0, c.Shelf().Len(), "nothing shelved when the journal fails")
}

func TestController_BrewInProgress(t *testing.T) {
	t.Parallel()

	j := &mockJournal{block: make(chan struct{}), entered: make(chan struct{})}
	c := newTestController(t, 3, j)

	set := testutil.Kinds(t, "MP")
	done := make(chan error, 1)
	go func() {
		_, err := c.Brew(context.Background(), set)
		done <- err
	}()

	<-j.entered
	_, err := c.Brew(context.Background(), testutil.Kinds(t, "MA"))
	assert.ErrorIs(t, err, ErrBrewInProgress)

	close(j.block)
	require.NoError(t, <-done)
	assert.Len(t, j.all(), 1)
}
