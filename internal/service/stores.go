package service

import "hangman/internal/models"

// The services read and write through these store interfaces rather than the
// concrete repositories, so tests can substitute in-memory fakes. The
// repository types satisfy them.

// UserStore persists users and their derived rankings.
type UserStore interface {
	CreateUser(name, email string) (*models.User, error)
	GetUserByName(name string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	ListUsers() ([]models.User, error)
	ListUsersByRanking() ([]models.User, error)
	ListUsersWithEmail() ([]models.User, error)
	UpdateRanking(userID int64, ranking float64) error
}

// GameStore persists games. SaveGameAndScore must commit the pair atomically.
type GameStore interface {
	CreateGame(g *models.Game) error
	GetGameByKey(key string) (*models.Game, error)
	UpdateGame(g *models.Game) error
	SaveGameAndScore(g *models.Game, s *models.Score) error
	ListGamesByUser(userID int64) ([]models.Game, error)
	ListActiveGamesByUser(userID int64) ([]models.Game, error)
	CountOpenGamesByUser(userID int64) (int, error)
}

// ScoreStore persists per-game scores.
type ScoreStore interface {
	CreateScore(gameID int64) (*models.Score, error)
	GetScoreByGameID(gameID int64) (*models.Score, error)
	ListScores() ([]models.ScoreWithUser, error)
	ListScoresByUser(userID int64) ([]models.ScoreWithUser, error)
	ListTopScores(limit int) ([]models.ScoreWithUser, error)
}

// TransactionLog is the append-only guess audit log.
type TransactionLog interface {
	AppendTransaction(gameID int64, guess, result string) error
	ListTransactionsByGame(gameID int64) ([]models.Transaction, error)
}
