package sse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/services/dice"
	"github.com/mcoot/protocols-go/internal/services/fleet"
	"github.com/mcoot/protocols-go/internal/web/templates/pages"
)

// Event names sent on the feed
const (
	EventStarship = "starship"
	EventRolls    = "rolls"
)

// Broadcaster renders service notifications as HTML fragments and sends
// them to every client on the hub
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

var (
	_ dice.Listener  = (*Broadcaster)(nil)
	_ fleet.Listener = (*Broadcaster)(nil)
)

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// StarshipRegistered sends the new registry entry
func (b *Broadcaster) StarshipRegistered(ctx context.Context, ship *model.Starship) {
	var buf strings.Builder
	if err := pages.StarshipItem(ship).Render(ctx, &buf); err != nil {
		b.logger.Error("sse failed to render starship",
			slog.String("starship_id", string(ship.ID)),
			slog.Any("error", err))
		return
	}
	b.hub.BroadcastEvent(EventStarship, buf.String())
}

// RollsRecorded sends the new rolls, newest first, as one fragment
func (b *Broadcaster) RollsRecorded(ctx context.Context, rolls []*model.Roll) {
	if len(rolls) == 0 {
		return
	}
	var buf strings.Builder
	for i := len(rolls) - 1; i >= 0; i-- {
		if err := pages.RollItem(rolls[i]).Render(ctx, &buf); err != nil {
			b.logger.Error("sse failed to render roll",
				slog.String("roll_id", string(rolls[i].ID)),
				slog.Any("error", err))
			return
		}
	}
	b.hub.BroadcastEvent(EventRolls, buf.String())
}
