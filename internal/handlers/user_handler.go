package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"hangman/internal/service"
)

// UserHandler handles user registration and ranking requests
type UserHandler struct {
	gameService    *service.GameService
	rankingService *service.RankingService
}

// NewUserHandler creates a new user handler
func NewUserHandler(gameService *service.GameService, rankingService *service.RankingService) *UserHandler {
	return &UserHandler{gameService: gameService, rankingService: rankingService}
}

// CreateUser registers a new user with a unique name
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.gameService.CreateUser(req.Name, req.Email)
	if err != nil {
		respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: fmt.Sprintf("User %s created!", user.Name),
	})
}

// Rankings recomputes every user's ranking and lists users by ranking
// descending
func (h *UserHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	users, err := h.rankingService.ListRankings()
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserViews(users))
}
