package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"hangman/internal/service"
)

// GameHandler handles the game lifecycle: creation, state, guesses,
// cancellation and history
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// NewGame starts a game for an existing user
func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	detail, err := h.gameService.NewGame(req.UserName)
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGameView(detail))
}

// GetGame returns the current state of a game
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	detail, err := h.gameService.GetGame(r.PathValue("gameKey"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameView(detail))
}

// MakeGuess plays one letter. Input is lowercased to match how words are
// stored; the engine compares exactly.
func (h *GameHandler) MakeGuess(w http.ResponseWriter, r *http.Request) {
	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	letter := strings.ToLower(strings.TrimSpace(req.Guess))
	detail, err := h.gameService.MakeGuess(r.PathValue("gameKey"), letter)
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameView(detail))
}

// CancelGame cancels an active game
func (h *GameHandler) CancelGame(w http.ResponseWriter, r *http.Request) {
	detail, err := h.gameService.CancelGame(r.PathValue("gameKey"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: detail.Message})
}

// UserGames lists a user's games still in play
func (h *GameHandler) UserGames(w http.ResponseWriter, r *http.Request) {
	details, err := h.gameService.ListUserGames(r.PathValue("userName"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameViews(details))
}

// GameHistory lists a game's guesses, oldest first
func (h *GameHandler) GameHistory(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.gameService.GameHistory(r.PathValue("gameKey"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionViews(transactions))
}
