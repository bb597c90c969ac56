package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/pkg/composables"
	"github.com/katzedaze/portfolio/pkg/httpapi"
)

// decodeBody parses the JSON request body into dto and writes the error
// response itself when the body is malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, dto any) bool {
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "Invalid Request Body")
		return false
	}
	return true
}

// pathID extracts and validates the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("request failed")
	httpapi.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
}
