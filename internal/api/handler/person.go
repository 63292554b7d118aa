package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/protocols-go/internal/api/response"
	"github.com/mcoot/protocols-go/internal/model"
)

// GetPerson handles GET /api/v1/people/{name}
func GetPerson(w http.ResponseWriter, r *http.Request) {
	person := model.NewPerson(mux.Vars(r)["name"])
	response.JSON(w, http.StatusOK, response.PersonFromModel(person))
}
