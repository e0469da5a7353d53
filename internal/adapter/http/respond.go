package http

import (
	"encoding/json"
	"net/http"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, message string, statusCode int, validationErrors []ValidationError) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:  message,
		Errors: validationErrors,
	})
}
