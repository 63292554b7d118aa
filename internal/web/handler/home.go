package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/services/dice"
	"github.com/mcoot/protocols-go/internal/services/fleet"
	"github.com/mcoot/protocols-go/internal/web/templates/layout"
	"github.com/mcoot/protocols-go/internal/web/templates/pages"
)

// HomeHandler handles the home page and its forms
type HomeHandler struct {
	fleetService *fleet.Service
	diceService  *dice.Service
	feedURL      string
	logger       *slog.Logger
}

// NewHomeHandler creates a new HomeHandler. An empty feedURL renders the
// page without live updates.
func NewHomeHandler(fleetService *fleet.Service, diceService *dice.Service, feedURL string, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		fleetService: fleetService,
		diceService:  diceService,
		feedURL:      feedURL,
		logger:       logger,
	}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "")
}

// RegisterStarship handles the starship form
func (h *HomeHandler) RegisterStarship(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	_, err := h.fleetService.Register(r.Context(), r.FormValue("name"), r.FormValue("prefix"))
	if errors.Is(err, model.ErrNameRequired) {
		h.render(w, r, http.StatusBadRequest, "Name is required")
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Roll handles the dice form
func (h *HomeHandler) Roll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	sides, err := strconv.Atoi(r.FormValue("sides"))
	if err != nil {
		h.render(w, r, http.StatusBadRequest, "Sides must be a number")
		return
	}
	count := 1
	if raw := r.FormValue("count"); raw != "" {
		if count, err = strconv.Atoi(raw); err != nil {
			h.render(w, r, http.StatusBadRequest, "Count must be a number")
			return
		}
	}

	_, err = h.diceService.Roll(r.Context(), sides, count)
	switch {
	case errors.Is(err, model.ErrInvalidSides):
		h.render(w, r, http.StatusBadRequest, "A die needs at least one side")
		return
	case errors.Is(err, model.ErrInvalidCount):
		h.render(w, r, http.StatusBadRequest, "Roll between 1 and 100 dice")
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *HomeHandler) render(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	ships, err := h.fleetService.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rolls, err := h.diceService.History(r.Context(), dice.DefaultHistoryLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Home",
			Error: errMsg,
		},
		Starships: ships,
		Rolls:     rolls,
		FeedURL:   h.feedURL,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render home page", slog.String("error", err.Error()))
	}
}

func (h *HomeHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("web request failed",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
