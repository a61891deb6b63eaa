package service

import (
	"strconv"

	"hangman/internal/game"
	"hangman/internal/models"
)

// RankingService recomputes and persists user rankings from game history.
// Recomputes are serialized per user; different users may run concurrently.
type RankingService struct {
	users  UserStore
	games  GameStore
	scores ScoreStore
	locks  *keyedMutex
}

// NewRankingService creates a new ranking service
func NewRankingService(users UserStore, games GameStore, scores ScoreStore) *RankingService {
	return &RankingService{
		users:  users,
		games:  games,
		scores: scores,
		locks:  newKeyedMutex(),
	}
}

// RecomputeUser rebuilds one user's ranking from all of their games and
// persists it.
func (s *RankingService) RecomputeUser(userID int64) (float64, error) {
	unlock := s.locks.Lock(strconv.FormatInt(userID, 10))
	defer unlock()

	games, err := s.games.ListGamesByUser(userID)
	if err != nil {
		return 0, err
	}

	played := make([]game.PlayedGame, 0, len(games))
	for i := range games {
		score, err := s.scores.GetScoreByGameID(games[i].ID)
		if err != nil {
			return 0, err
		}
		played = append(played, game.PlayedGame{Game: &games[i], Score: score})
	}

	ranking := game.Ranking(played)
	if err := s.users.UpdateRanking(userID, ranking); err != nil {
		return 0, err
	}
	return ranking, nil
}

// ListRankings recomputes every user's ranking and returns all users ordered
// by ranking descending.
func (s *RankingService) ListRankings() ([]models.User, error) {
	users, err := s.users.ListUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if _, err := s.RecomputeUser(users[i].ID); err != nil {
			return nil, err
		}
	}

	return s.users.ListUsersByRanking()
}
