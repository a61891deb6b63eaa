package models

import "time"

// Transaction is an immutable audit record of one accepted guess: the letter
// played and the outcome message it produced. Ordered by CreatedAt for
// history queries.
type Transaction struct {
	ID        int64
	GameID    int64
	Guess     string
	Result    string
	CreatedAt time.Time
}
