package deck

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/model"
	"github.com/udisondev/cauldron/internal/testutil"
)

// fixedSource — источник с заданным списком ингредиентов.
type fixedSource []*model.Ingredient

func (s fixedSource) All() []*model.Ingredient { return s }

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestDeck_DrawAll(t *testing.T) {
	t.Parallel()

	catalog, err := testutil.Catalog()
	require.NoError(t, err)

	d := New(catalog, 0, seeded())
	total := catalog.Len() * data.DefaultCopiesPerIngredient
	require.Equal(t, total, d.Remaining())

	counts := make(map[string]int)
	for range total {
		card, ok := d.Draw()
		require.True(t, ok)
		counts[card.Name()]++
	}
	assert.Equal(t, 0, d.Remaining())

	for _, name := range data.AllIngredientNames() {
		assert.Equal(t, data.DefaultCopiesPerIngredient, counts[name], name)
	}

	card, ok := d.Draw()
	assert.False(t, ok)
	assert.Nil(t, card)
}

func TestDeck_SameSeedSameOrder(t *testing.T) {
	t.Parallel()

	src := fixedSource(testutil.Kinds(t, "MP", "MA", "MM", "NP"))
	a := New(src, 2, seeded())
	b := New(src, 2, seeded())

	for range a.Remaining() {
		x, _ := a.Draw()
		y, _ := b.Draw()
		assert.Same(t, x, y)
	}
}

func TestDeck_NilRng(t *testing.T) {
	t.Parallel()

	d := New(fixedSource(testutil.Kinds(t, "MP")), 3, nil)
	assert.Equal(t, 3, d.Remaining())
	_, ok := d.Draw()
	assert.True(t, ok)
}
