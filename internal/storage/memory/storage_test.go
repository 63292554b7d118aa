package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Starship tests

func (s *StorageSuite) TestSaveAndGetStarship() {
	ship := model.NewStarship("Enterprise", "USS")
	ship.ID = "ss-1"

	err := s.storage.SaveStarship(s.ctx, ship)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetStarship(s.ctx, "ss-1")
	s.Require().NoError(err)
	s.Equal("USS Enterprise", retrieved.FullName())
}

func (s *StorageSuite) TestGetStarshipNotFound() {
	_, err := s.storage.GetStarship(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrStarshipNotFound)
}

func (s *StorageSuite) TestListStarshipsInRegistrationOrder() {
	for _, id := range []model.StarshipID{"c", "a", "b"} {
		ship := model.NewStarship(string(id), "")
		ship.ID = id
		s.Require().NoError(s.storage.SaveStarship(s.ctx, ship))
	}

	// Re-saving does not move a ship
	again := model.NewStarship("c2", "")
	again.ID = "c"
	s.Require().NoError(s.storage.SaveStarship(s.ctx, again))

	ships, err := s.storage.ListStarships(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(ships, 3)
	s.Equal(model.StarshipID("c"), ships[0].ID)
	s.Equal("c2", ships[0].Name)
	s.Equal(model.StarshipID("a"), ships[1].ID)
	s.Equal(model.StarshipID("b"), ships[2].ID)
}

func (s *StorageSuite) TestListStarshipsEmpty() {
	ships, err := s.storage.ListStarships(s.ctx)
	s.Require().NoError(err)
	s.Empty(ships)
}

// Roll tests

func (s *StorageSuite) TestListRollsNewestFirst() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		err := s.storage.SaveRoll(s.ctx, &model.Roll{
			ID:       model.RollID(string(rune('0' + i))),
			Sides:    6,
			Value:    i,
			RolledAt: now,
		})
		s.Require().NoError(err)
	}

	rolls, err := s.storage.ListRolls(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(rolls, 2)
	s.Equal(3, rolls[0].Value)
	s.Equal(2, rolls[1].Value)

	all, err := s.storage.ListRolls(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *StorageSuite) TestRollHistoryIsCapped() {
	for i := 0; i < storage.MaxRollHistory+5; i++ {
		s.Require().NoError(s.storage.SaveRoll(s.ctx, &model.Roll{Sides: 6, Value: i}))
	}

	rolls, err := s.storage.ListRolls(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(rolls, storage.MaxRollHistory)
	s.Equal(storage.MaxRollHistory+4, rolls[0].Value)
}
