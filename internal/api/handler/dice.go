package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mcoot/protocols-go/internal/api/request"
	"github.com/mcoot/protocols-go/internal/api/response"
	"github.com/mcoot/protocols-go/internal/services/dice"
)

// DiceHandler handles dice endpoints
type DiceHandler struct {
	diceService *dice.Service
}

// NewDiceHandler creates a new dice handler
func NewDiceHandler(diceService *dice.Service) *DiceHandler {
	return &DiceHandler{
		diceService: diceService,
	}
}

// Roll handles POST /api/v1/dice/roll
func (h *DiceHandler) Roll(w http.ResponseWriter, r *http.Request) {
	var req request.RollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
	}

	rolls, err := h.diceService.Roll(r.Context(), req.Sides, count)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RollResult{
		Sides: req.Sides,
		Rolls: response.RollListFromModel(rolls).Rolls,
	})
}

// History handles GET /api/v1/dice/rolls
func (h *DiceHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	rolls, err := h.diceService.History(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RollListFromModel(rolls))
}
