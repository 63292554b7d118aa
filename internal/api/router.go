package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/protocols-go/internal/api/apierr"
	"github.com/mcoot/protocols-go/internal/api/handler"
	"github.com/mcoot/protocols-go/internal/api/middleware"
	"github.com/mcoot/protocols-go/internal/api/response"
	"github.com/mcoot/protocols-go/internal/services/dice"
	"github.com/mcoot/protocols-go/internal/services/fleet"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	DiceService  *dice.Service
	FleetService *fleet.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	starshipHandler := handler.NewStarshipHandler(cfg.FleetService)
	diceHandler := handler.NewDiceHandler(cfg.DiceService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Starship routes; compare is registered before {id} so it is not captured
	api.HandleFunc("/starships", starshipHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/starships", starshipHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/starships/compare", starshipHandler.Compare).Methods(http.MethodPost)
	api.HandleFunc("/starships/{id}", starshipHandler.Get).Methods(http.MethodGet)

	// Dice routes
	api.HandleFunc("/dice/roll", diceHandler.Roll).Methods(http.MethodPost)
	api.HandleFunc("/dice/rolls", diceHandler.History).Methods(http.MethodGet)

	// People are not stored; the name is echoed through the Named capability
	api.HandleFunc("/people/{name}", handler.GetPerson).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
