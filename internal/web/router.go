package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/protocols-go/internal/services/dice"
	"github.com/mcoot/protocols-go/internal/services/fleet"
	"github.com/mcoot/protocols-go/internal/web/handler"
	"github.com/mcoot/protocols-go/internal/web/middleware"
	"github.com/mcoot/protocols-go/internal/web/sse"
)

// FeedPath is where the live update stream is served
const FeedPath = "/events"

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger       *slog.Logger
	FleetService *fleet.Service
	DiceService  *dice.Service
	// Feed enables live updates on the home page (optional)
	Feed *sse.Hub
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	feedURL := ""
	if cfg.Feed != nil {
		feedURL = FeedPath
		r.Handle(FeedPath, sse.Handler(cfg.Feed)).Methods(http.MethodGet)
	}

	homeHandler := handler.NewHomeHandler(cfg.FleetService, cfg.DiceService, feedURL, cfg.Logger)

	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/starships", homeHandler.RegisterStarship).Methods(http.MethodPost)
	r.HandleFunc("/roll", homeHandler.Roll).Methods(http.MethodPost)

	return r
}
