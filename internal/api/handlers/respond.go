package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/filmbox/movie-collection-website/internal/domain"
)

// Every response body is JSON, including errors. Nothing here ever writes an
// HTML error page or a raw stack trace.

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondValidationError(w http.ResponseWriter, status int, v *domain.ValidationError) {
	respondJSON(w, status, map[string]interface{}{"errors": v.Fields})
}
