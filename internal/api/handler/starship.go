package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/protocols-go/internal/api/request"
	"github.com/mcoot/protocols-go/internal/api/response"
	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/services/fleet"
)

// StarshipHandler handles starship registry endpoints
type StarshipHandler struct {
	fleetService *fleet.Service
}

// NewStarshipHandler creates a new starship handler
func NewStarshipHandler(fleetService *fleet.Service) *StarshipHandler {
	return &StarshipHandler{
		fleetService: fleetService,
	}
}

// Create handles POST /api/v1/starships
func (h *StarshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStarshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ship, err := h.fleetService.Register(r.Context(), req.Name, req.Prefix)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.StarshipFromModel(ship))
}

// List handles GET /api/v1/starships
func (h *StarshipHandler) List(w http.ResponseWriter, r *http.Request) {
	ships, err := h.fleetService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StarshipListFromModel(ships))
}

// Get handles GET /api/v1/starships/{id}
func (h *StarshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.StarshipID(mux.Vars(r)["id"])

	ship, err := h.fleetService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StarshipFromModel(ship))
}

// Compare handles POST /api/v1/starships/compare
func (h *StarshipHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req request.CompareStarshipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.LeftID == "" || req.RightID == "" {
		WriteError(w, NewInvalidRequestError("left_id and right_id are required"))
		return
	}

	cmp, err := h.fleetService.Compare(r.Context(), model.StarshipID(req.LeftID), model.StarshipID(req.RightID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ComparisonFromService(cmp))
}
