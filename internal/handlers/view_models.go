package handlers

import (
	"time"

	"hangman/internal/models"
	"hangman/internal/service"
)

// Request bodies.

// CreateUserRequest registers a new user
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// NewGameRequest starts a game for an existing user
type NewGameRequest struct {
	UserName string `json:"user_name"`
}

// GuessRequest plays one letter in an existing game
type GuessRequest struct {
	Guess string `json:"guess"`
}

// Response bodies.

// GameView is the outbound state of a game. The secret word itself is never
// included; clients see it only through the revealed positions.
type GameView struct {
	Key               string   `json:"key"`
	UserName          string   `json:"user_name"`
	Revealed          []string `json:"revealed"`
	IncorrectGuesses  []string `json:"incorrect_guesses"`
	AttemptsRemaining int      `json:"attempts_remaining"`
	Hangman           []string `json:"hangman"`
	GameOver          bool     `json:"game_over"`
	GameCancelled     bool     `json:"game_cancelled"`
	Message           string   `json:"message,omitempty"`
}

// ScoreView is the outbound form of one game's score
type ScoreView struct {
	UserName string    `json:"user_name"`
	Date     time.Time `json:"date"`
	Won      bool      `json:"won"`
	Points   int       `json:"points"`
}

// UserView is the outbound form of a user and their ranking
type UserView struct {
	UserName string  `json:"user_name"`
	Ranking  float64 `json:"ranking"`
}

// TransactionView is the outbound form of one audit record
type TransactionView struct {
	Date   time.Time `json:"date"`
	Guess  string    `json:"guess"`
	Result string    `json:"result"`
}

// MessageResponse carries a bare informational message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries an error message
type ErrorResponse struct {
	Error string `json:"error"`
}

func toGameView(d *service.GameDetail) GameView {
	return GameView{
		Key:               d.Game.Key,
		UserName:          d.OwnerName,
		Revealed:          d.Game.Revealed,
		IncorrectGuesses:  d.Game.IncorrectGuesses,
		AttemptsRemaining: d.Game.AttemptsRemaining,
		Hangman:           d.Game.Hangman,
		GameOver:          d.Game.GameOver,
		GameCancelled:     d.Game.GameCancelled,
		Message:           d.Message,
	}
}

func toGameViews(details []service.GameDetail) []GameView {
	views := make([]GameView, 0, len(details))
	for i := range details {
		views = append(views, toGameView(&details[i]))
	}
	return views
}

func toScoreViews(scores []models.ScoreWithUser) []ScoreView {
	views := make([]ScoreView, 0, len(scores))
	for _, s := range scores {
		views = append(views, ScoreView{
			UserName: s.UserName,
			Date:     s.Score.CreatedAt,
			Won:      s.Score.Won,
			Points:   s.Score.Points,
		})
	}
	return views
}

func toUserViews(users []models.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserView{UserName: u.Name, Ranking: u.Ranking})
	}
	return views
}

func toTransactionViews(transactions []models.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, TransactionView{
			Date:   t.CreatedAt,
			Guess:  t.Guess,
			Result: t.Result,
		})
	}
	return views
}
