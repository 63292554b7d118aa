package storage

import (
	"context"

	"github.com/mcoot/protocols-go/internal/model"
)

// MaxRollHistory is the number of most recent rolls a backend retains
const MaxRollHistory = 1000

// Storage defines the interface for data persistence
type Storage interface {
	// Starship operations
	SaveStarship(ctx context.Context, ship *model.Starship) error
	GetStarship(ctx context.Context, id model.StarshipID) (*model.Starship, error)
	// ListStarships returns starships in the order they were first saved
	ListStarships(ctx context.Context) ([]*model.Starship, error)

	// Roll operations
	SaveRoll(ctx context.Context, roll *model.Roll) error
	// ListRolls returns up to limit rolls, newest first
	ListRolls(ctx context.Context, limit int) ([]*model.Roll, error)
}
