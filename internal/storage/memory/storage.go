package memory

import (
	"context"
	"sync"

	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	starships     map[model.StarshipID]*model.Starship
	starshipOrder []model.StarshipID
	rolls         []*model.Roll // oldest first
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		starships: make(map[model.StarshipID]*model.Starship),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Starship operations

func (s *Storage) SaveStarship(ctx context.Context, ship *model.Starship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.starships[ship.ID]; !exists {
		s.starshipOrder = append(s.starshipOrder, ship.ID)
	}
	s.starships[ship.ID] = ship
	return nil
}

func (s *Storage) GetStarship(ctx context.Context, id model.StarshipID) (*model.Starship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ship, ok := s.starships[id]
	if !ok {
		return nil, model.ErrStarshipNotFound
	}
	return ship, nil
}

func (s *Storage) ListStarships(ctx context.Context) ([]*model.Starship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ships := make([]*model.Starship, 0, len(s.starshipOrder))
	for _, id := range s.starshipOrder {
		ships = append(ships, s.starships[id])
	}
	return ships, nil
}

// Roll operations

func (s *Storage) SaveRoll(ctx context.Context, roll *model.Roll) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls = append(s.rolls, roll)
	if over := len(s.rolls) - storage.MaxRollHistory; over > 0 {
		s.rolls = s.rolls[over:]
	}
	return nil
}

func (s *Storage) ListRolls(ctx context.Context, limit int) ([]*model.Roll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.rolls) {
		limit = len(s.rolls)
	}
	result := make([]*model.Roll, 0, limit)
	for i := len(s.rolls) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.rolls[i])
	}
	return result, nil
}
