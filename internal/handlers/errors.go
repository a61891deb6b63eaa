package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"hangman/internal/game"
	"hangman/internal/service"
)

// writeJSON encodes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondWithError maps a service or engine error onto an HTTP status and a
// JSON error body. Unrecognized errors are logged and reported as a 500
// without leaking detail.
func respondWithError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		msg = "internal server error"
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrGameCancelled):
		return http.StatusConflict
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, game.ErrGuessLength),
		errors.Is(err, game.ErrGuessNotLetter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
