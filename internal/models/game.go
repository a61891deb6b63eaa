package models

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a game. Won, Lost and Cancelled are
// terminal; no guess is accepted once a game has left StatusActive.
type Status string

const (
	StatusActive    Status = "active"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
	StatusCancelled Status = "cancelled"
)

// Placeholder marks a letter of the word that has not been revealed yet.
const Placeholder = "_"

// Game is a single hangman round owned by one user. The word is fixed at
// creation; Revealed mirrors it position by position with Placeholder for
// letters not guessed yet. Key is the opaque reference handed to clients.
type Game struct {
	ID                int64
	Key               string
	UserID            int64
	Word              string
	Revealed          []string
	IncorrectGuesses  []string
	AttemptsRemaining int
	Hangman           []string
	GameOver          bool
	GameCancelled     bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Status derives the lifecycle state from the stored flags.
func (g *Game) Status() Status {
	switch {
	case g.GameCancelled:
		return StatusCancelled
	case g.GameOver && g.WordComplete():
		return StatusWon
	case g.GameOver:
		return StatusLost
	default:
		return StatusActive
	}
}

// WordComplete reports whether every position of the word has been revealed.
func (g *Game) WordComplete() bool {
	return strings.Join(g.Revealed, "") == g.Word
}

// RevealedCount returns the number of revealed positions.
func (g *Game) RevealedCount() int {
	count := 0
	for _, c := range g.Revealed {
		if c != Placeholder {
			count++
		}
	}
	return count
}

// Clone returns a deep copy so the guess engine can work on a snapshot
// without mutating the loaded entity.
func (g *Game) Clone() *Game {
	copied := *g
	copied.Revealed = append([]string(nil), g.Revealed...)
	copied.IncorrectGuesses = append([]string(nil), g.IncorrectGuesses...)
	copied.Hangman = append([]string(nil), g.Hangman...)
	return &copied
}
