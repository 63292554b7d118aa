// Package fleet registers starships and compares them by full name.
package fleet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/protocols-go/internal/dependencies/clock"
	"github.com/mcoot/protocols-go/internal/dependencies/random"
	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/storage"
)

// Starship ID generation
const (
	StarshipIDLength   = 10
	StarshipIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Comparison is the outcome of comparing two registered starships
type Comparison struct {
	Left  *model.Starship
	Right *model.Starship
	Equal bool
}

// Listener is notified after a starship has been registered
type Listener interface {
	StarshipRegistered(ctx context.Context, ship *model.Starship)
}

// Service manages the starship registry
type Service struct {
	storage   storage.Storage
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
	listeners []Listener
}

// New creates a new fleet Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "fleet-service")),
	}
}

// AddListener registers l for registration notifications. It is not safe
// to call concurrently with Register.
func (s *Service) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Register adds a starship to the registry. Surrounding whitespace is
// trimmed from both fields and an empty prefix means none.
func (s *Service) Register(ctx context.Context, name, prefix string) (*model.Starship, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}

	ship := model.NewStarship(name, strings.TrimSpace(prefix))
	ship.ID = model.StarshipID("ss_" + s.random.String(StarshipIDLength, StarshipIDAlphabet))
	ship.RegisteredAt = s.clock.Now()

	if err := s.storage.SaveStarship(ctx, ship); err != nil {
		s.logger.Error("failed to save starship",
			slog.String("starship_id", string(ship.ID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("save starship: %w", err)
	}

	s.logger.Info("starship registered",
		slog.String("starship_id", string(ship.ID)),
		slog.String("full_name", ship.FullName()),
	)

	for _, l := range s.listeners {
		l.StarshipRegistered(ctx, ship)
	}
	return ship, nil
}

// Get retrieves a registered starship
func (s *Service) Get(ctx context.Context, id model.StarshipID) (*model.Starship, error) {
	return s.storage.GetStarship(ctx, id)
}

// List returns all registered starships in registration order
func (s *Service) List(ctx context.Context) ([]*model.Starship, error) {
	return s.storage.ListStarships(ctx)
}

// Compare looks up two starships and reports whether they are equal
func (s *Service) Compare(ctx context.Context, leftID, rightID model.StarshipID) (*Comparison, error) {
	left, err := s.storage.GetStarship(ctx, leftID)
	if err != nil {
		return nil, err
	}
	right, err := s.storage.GetStarship(ctx, rightID)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Left:  left,
		Right: right,
		Equal: left.Equal(right),
	}, nil
}

// FindEqual returns every registered starship equal to the candidate,
// including the candidate itself if it is registered
func (s *Service) FindEqual(ctx context.Context, candidate *model.Starship) ([]*model.Starship, error) {
	ships, err := s.storage.ListStarships(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*model.Starship
	for _, ship := range ships {
		if ship.Equal(candidate) {
			matches = append(matches, ship)
		}
	}
	return matches, nil
}
