package httpapi

import (
	"encoding/json"
	"net/http"
)

// Detail describes a single field-level validation issue.
type Detail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorEnvelope standardizes JSON error responses for the API namespace.
type ErrorEnvelope struct {
	Error   string   `json:"error"`
	Details []Detail `json:"details,omitempty"`
}

// SuccessEnvelope is the body returned by mutating endpoints.
type SuccessEnvelope struct {
	Success bool `json:"success"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// A nil payload encodes as JSON null, which the profile endpoint
	// relies on before a profile exists.
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, &ErrorEnvelope{Error: message})
}

func WriteValidationError(w http.ResponseWriter, details []Detail) error {
	return WriteJSON(w, http.StatusBadRequest, &ErrorEnvelope{
		Error:   "Validation Error",
		Details: details,
	})
}

func WriteSuccess(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusOK, &SuccessEnvelope{Success: true})
}
