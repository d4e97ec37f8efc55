package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type BrewRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	repo *BrewRepository
}

func TestBrewRepositorySuite(t *testing.T) {
	suite.Run(t, new(BrewRepositorySuite))
}

func (s *BrewRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = NewBrewRepository(setupTestDB(s.T()))
}

func brewAt(potionID, recipe string, at time.Time) BrewRow {
	return BrewRow{
		PotionID:    potionID,
		RecipeName:  recipe,
		Level:       2,
		Duration:    1,
		MagicType:   "Plant",
		Ingredients: []string{"mist_seed"},
		BrewedAt:    at,
	}
}

func (s *BrewRepositorySuite) TestRecordAndRecent() {
	base := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Require().NoError(s.repo.Record(s.ctx, brewAt("MP1", "Plant Potion", base)))
	s.Require().NoError(s.repo.Record(s.ctx, brewAt("MP2", "Double Plant Potion", base.Add(time.Minute))))
	s.Require().NoError(s.repo.Record(s.ctx, BrewRow{PotionID: "MM1", RecipeName: "Mineral Potion", MagicType: "Mineral"}))

	recent, err := s.repo.Recent(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal("MM1", recent[0].PotionID, "zero BrewedAt means now")
	s.Equal("MP2", recent[1].PotionID)
	s.Equal([]string{"mist_seed"}, recent[1].Ingredients)
	s.WithinDuration(base.Add(time.Minute), recent[1].BrewedAt, time.Millisecond)
	s.Empty(recent[0].Ingredients)

	none, err := s.repo.Recent(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *BrewRepositorySuite) TestCodex() {
	base := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, row := range []BrewRow{
		brewAt("MP2", "Double Plant Potion", base.Add(2*time.Minute)),
		brewAt("MP1", "Plant Potion", base.Add(time.Minute)),
		brewAt("MP1", "Renamed Plant Potion", base.Add(3*time.Minute)),
		brewAt("MA1MP1", "Plant-Animal Potion", base),
	} {
		s.Require().NoError(s.repo.Record(s.ctx, row))
	}

	codex, err := s.repo.Codex(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(codex, 3)

	s.Equal("MA1MP1", codex[0].PotionID)
	s.Equal("MP1", codex[1].PotionID)
	s.Equal("MP2", codex[2].PotionID)

	s.Equal(int64(2), codex[1].Count)
	s.Equal("Plant Potion", codex[1].RecipeName, "name of the first brew")
	s.WithinDuration(base.Add(time.Minute), codex[1].FirstBrewed, time.Millisecond)
	s.WithinDuration(base.Add(3*time.Minute), codex[1].LastBrewed, time.Millisecond)
}

func (s *BrewRepositorySuite) TestCodexEmpty() {
	codex, err := s.repo.Codex(s.ctx)
	s.Require().NoError(err)
	s.Empty(codex)
}
