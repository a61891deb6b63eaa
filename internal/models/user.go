package models

import "time"

// User represents a registered player. Names are unique; the ranking is a
// derived aggregate over all of the user's games and is recomputed on demand.
type User struct {
	ID        int64
	Name      string
	Email     string
	Ranking   float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEmail reports whether the user can receive reminder emails.
func (u *User) HasEmail() bool {
	return u.Email != ""
}
