package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Errors []string `json:"errors"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// RespondWithValidationErrors reports request body validation failures as an
// array of field-level messages.
func RespondWithValidationErrors(w http.ResponseWriter, messages []string) {
	RespondWithJSON(w, http.StatusBadRequest, ValidationResponse{Errors: messages})
}
