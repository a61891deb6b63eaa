package models

import "time"

// Score accumulates the points of one game. It is created at zero alongside
// the game and receives no further writes once the game is over.
type Score struct {
	ID        int64
	GameID    int64
	Points    int
	Won       bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScoreWithUser pairs a score with the name of the game's owner for listing.
type ScoreWithUser struct {
	Score
	UserName string
}

// Clone returns a copy for the guess engine to mutate.
func (s *Score) Clone() *Score {
	copied := *s
	return &copied
}
