package dice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/protocols-go/internal/dependencies/clock"
	"github.com/mcoot/protocols-go/internal/dependencies/random"
	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/storage"
)

// Roll request limits
const (
	MinRollCount        = 1
	MaxRollCount        = 100
	DefaultHistoryLimit = 20
)

// Roll ID generation
const (
	RollIDLength   = 12
	RollIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Listener is notified after rolls have been recorded
type Listener interface {
	RollsRecorded(ctx context.Context, rolls []*model.Roll)
}

// Service rolls dice against a shared generator and records the results
type Service struct {
	storage   storage.Storage
	generator random.Generator
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
	listeners []Listener
}

// NewService creates a new dice Service
func NewService(
	storage storage.Storage,
	generator random.Generator,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:   storage,
		generator: generator,
		clock:     clock,
		random:    random,
		logger:    logger.With(slog.String("component", "dice-service")),
	}
}

// AddListener registers l for roll notifications. It is not safe to call
// concurrently with Roll.
func (s *Service) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Roll rolls a die with the given number of sides count times and records each result
func (s *Service) Roll(ctx context.Context, sides, count int) ([]*model.Roll, error) {
	if count < MinRollCount || count > MaxRollCount {
		return nil, fmt.Errorf("%w: count must be between %d and %d", model.ErrInvalidCount, MinRollCount, MaxRollCount)
	}

	die, err := New(sides, s.generator)
	if err != nil {
		return nil, err
	}

	rolls := make([]*model.Roll, 0, count)
	for i := 0; i < count; i++ {
		roll := &model.Roll{
			ID:       model.RollID("r_" + s.random.String(RollIDLength, RollIDAlphabet)),
			Sides:    die.Sides(),
			Value:    die.Roll(),
			RolledAt: s.clock.Now(),
		}
		if err := s.storage.SaveRoll(ctx, roll); err != nil {
			s.logger.Error("failed to save roll",
				slog.String("roll_id", string(roll.ID)),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("save roll: %w", err)
		}
		rolls = append(rolls, roll)
	}

	s.logger.Info("dice rolled",
		slog.Int("sides", sides),
		slog.Int("count", count),
	)

	for _, l := range s.listeners {
		l.RollsRecorded(ctx, rolls)
	}

	return rolls, nil
}

// History returns up to limit recorded rolls, newest first.
// A non-positive limit uses DefaultHistoryLimit.
func (s *Service) History(ctx context.Context, limit int) ([]*model.Roll, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.storage.ListRolls(ctx, limit)
}
