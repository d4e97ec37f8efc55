package identity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cauldron/internal/model"
)

func ing(t *testing.T, name string, f model.Family, s model.SubFamily) *model.Ingredient {
	t.Helper()
	i, err := model.NewIngredient(name, "", f, s, "")
	require.NoError(t, err)
	return i
}

func TestInitial(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "M", Initial("Magic"))
	assert.Equal(t, "N", Initial("natural"))
	assert.Equal(t, "?", Initial(""))
}

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    model.Family
		s    model.SubFamily
		want string
	}{
		{model.FamilyMagic, model.SubFamilyPlant, "MP"},
		{model.FamilyMagic, model.SubFamilyAnimal, "MA"},
		{model.FamilyMagic, model.SubFamilyMineral, "MM"},
		{model.FamilyNatural, model.SubFamilyPlant, "NP"},
		{model.FamilyNatural, model.SubFamilyAnimal, "NA"},
		{model.FamilyNatural, model.SubFamilyMineral, "NM"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.f, tt.s))
		})
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	herb := ing(t, "illusion_herb", model.FamilyMagic, model.SubFamilyPlant)
	seed := ing(t, "mist_seed", model.FamilyMagic, model.SubFamilyPlant)
	sulfur := ing(t, "sulfur", model.FamilyNatural, model.SubFamilyMineral)
	feather := ing(t, "phoenix_feather", model.FamilyMagic, model.SubFamilyAnimal)
	flower := ing(t, "flower", model.FamilyNatural, model.SubFamilyPlant)
	cat := ing(t, "cat_hair", model.FamilyNatural, model.SubFamilyAnimal)

	tests := []struct {
		name string
		in   []*model.Ingredient
		want string
	}{
		{"empty", nil, ""},
		{"single magic plant", []*model.Ingredient{herb}, "MP1"},
		{"double magic plant", []*model.Ingredient{herb, herb}, "MP2"},
		{"different plants same key", []*model.Ingredient{herb, seed}, "MP2"},
		{"magic plant + natural mineral", []*model.Ingredient{herb, sulfur}, "MP1NM1"},
		{"natural first in input", []*model.Ingredient{sulfur, herb}, "MP1NM1"},
		{"ordinal key sort", []*model.Ingredient{herb, feather, sulfur, herb}, "MA1MP2NM1"},
		{"no magic", []*model.Ingredient{flower, cat}, "NA1NP1"},
		{"five ingredients", []*model.Ingredient{herb, herb, feather, sulfur, flower}, "MA1MP2NM1NP1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.in))
		})
	}
}

func TestCompute_Commutative(t *testing.T) {
	t.Parallel()

	set := []*model.Ingredient{
		ing(t, "illusion_herb", model.FamilyMagic, model.SubFamilyPlant),
		ing(t, "stardust", model.FamilyMagic, model.SubFamilyMineral),
		ing(t, "leaf", model.FamilyNatural, model.SubFamilyPlant),
		ing(t, "stardust", model.FamilyMagic, model.SubFamilyMineral),
	}
	want := Compute(set)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		shuffled := append([]*model.Ingredient(nil), set...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, Compute(shuffled))
	}
}

func TestFromCounts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MM3NA1", FromCounts(map[string]int{"NA": 1, "MM": 3, "MP": 0}))
	assert.Equal(t, "", FromCounts(nil))
}

func TestKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"MP", "MA", "MM", "NP", "NA", "NM"}, Kinds())
}

func TestAll(t *testing.T) {
	t.Parallel()

	one := All(1)
	assert.Equal(t, []string{"MA1", "MM1", "MP1", "NA1", "NM1", "NP1"}, one)

	// Мультимножества размера 1..4 над 6 видами: 6 + 21 + 56 + 126
	all := All(4)
	assert.Len(t, all, 209)
	assert.True(t, isSorted(all))
	assert.Contains(t, all, "MP2")
	assert.Contains(t, all, "MP1NM1")
	assert.Contains(t, all, "NM4")
	assert.NotContains(t, all, "MP5")

	assert.Empty(t, All(0))
}

func TestBrewable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"MA1", "MM1", "MP1"}, Brewable(1))

	// 209 составов минус 34 чисто natural (3 + 6 + 10 + 15)
	brewable := Brewable(4)
	assert.Len(t, brewable, 175)
	assert.True(t, isSorted(brewable))
	assert.Contains(t, brewable, "MP1NM1")
	assert.Contains(t, brewable, "MM4")
	assert.NotContains(t, brewable, "NM4")
	assert.NotContains(t, brewable, "NA1NP1")
	assert.Subset(t, All(4), brewable)

	assert.Empty(t, Brewable(0))
}

func isSorted(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}
