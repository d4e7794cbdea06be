package handler

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func validationError(w http.ResponseWriter, errors map[string]string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errors})
}

// serverError logs the cause and returns a generic message. Raw error text
// never reaches the client.
func serverError(w http.ResponseWriter, err error) {
	log.Printf("[http] internal error: %v", err)
	errorJSON(w, http.StatusInternalServerError, "Server error")
}
