package models

import (
	"reflect"
	"testing"
)

func TestGameStatus(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want Status
	}{
		{
			name: "fresh game is active",
			game: Game{Word: "cat", Revealed: []string{"_", "_", "_"}},
			want: StatusActive,
		},
		{
			name: "over with complete word is won",
			game: Game{Word: "cat", Revealed: []string{"c", "a", "t"}, GameOver: true},
			want: StatusWon,
		},
		{
			name: "over with incomplete word is lost",
			game: Game{Word: "cat", Revealed: []string{"c", "_", "_"}, GameOver: true},
			want: StatusLost,
		},
		{
			name: "cancelled",
			game: Game{Word: "cat", Revealed: []string{"c", "_", "_"}, GameCancelled: true},
			want: StatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.game.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWordComplete(t *testing.T) {
	g := Game{Word: "cat", Revealed: []string{"c", "_", "t"}}
	if g.WordComplete() {
		t.Error("WordComplete() = true with a hidden position")
	}
	g.Revealed[1] = "a"
	if !g.WordComplete() {
		t.Error("WordComplete() = false with every position revealed")
	}
}

func TestRevealedCount(t *testing.T) {
	g := Game{Revealed: []string{"c", "_", "t", "_"}}
	if got := g.RevealedCount(); got != 2 {
		t.Errorf("RevealedCount() = %d, want 2", got)
	}
}

func TestGameClone(t *testing.T) {
	g := &Game{
		ID:               1,
		Key:              "abc",
		Word:             "cat",
		Revealed:         []string{"c", "_", "_"},
		IncorrectGuesses: []string{"x"},
		Hangman:          []string{"head"},
	}

	clone := g.Clone()
	if !reflect.DeepEqual(g, clone) {
		t.Fatalf("Clone() = %+v, want %+v", clone, g)
	}

	clone.Revealed[1] = "a"
	clone.IncorrectGuesses = append(clone.IncorrectGuesses, "y")
	clone.Hangman[0] = "body"

	if g.Revealed[1] != "_" {
		t.Error("mutating clone's revealed slice changed the original")
	}
	if len(g.IncorrectGuesses) != 1 {
		t.Error("mutating clone's incorrect guesses changed the original")
	}
	if g.Hangman[0] != "head" {
		t.Error("mutating clone's hangman slice changed the original")
	}
}

func TestUserHasEmail(t *testing.T) {
	if (&User{Name: "bob"}).HasEmail() {
		t.Error("HasEmail() = true for user without email")
	}
	if !(&User{Name: "bob", Email: "bob@example.com"}).HasEmail() {
		t.Error("HasEmail() = false for user with email")
	}
}
