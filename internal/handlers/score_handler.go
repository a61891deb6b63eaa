package handlers

import (
	"net/http"
	"strconv"

	"hangman/internal/service"
)

// ScoreHandler handles the score listing queries
type ScoreHandler struct {
	gameService *service.GameService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(gameService *service.GameService) *ScoreHandler {
	return &ScoreHandler{gameService: gameService}
}

// Scores lists every game's score
func (h *ScoreHandler) Scores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.gameService.ListScores()
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScoreViews(scores))
}

// TopScores lists the highest scores, points descending. The limit query
// parameter caps the result count.
func (h *ScoreHandler) TopScores(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	scores, err := h.gameService.ListTopScores(limit)
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScoreViews(scores))
}

// UserScores lists the scores of one user's games
func (h *ScoreHandler) UserScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.gameService.ListUserScores(r.PathValue("userName"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScoreViews(scores))
}
