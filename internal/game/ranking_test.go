package game

import (
	"testing"

	"hangman/internal/models"
)

// playedGame builds a finished game with the given revealed/incorrect shape
// and score for ranking tests.
func playedGame(revealed, incorrect []string, points int) PlayedGame {
	return PlayedGame{
		Game: &models.Game{
			Word:             "ignored",
			Revealed:         revealed,
			IncorrectGuesses: incorrect,
		},
		Score: &models.Score{Points: points},
	}
}

func TestRanking(t *testing.T) {
	tests := []struct {
		name  string
		games []PlayedGame
		want  float64
	}{
		{
			name:  "no games",
			games: nil,
			want:  0,
		},
		{
			name: "single game",
			// 10 points over 5 guesses: 10/5 + 10 = 12.
			games: []PlayedGame{
				playedGame([]string{"c", "a", "t"}, []string{"x", "y"}, 10),
			},
			want: 12,
		},
		{
			name: "zero-point games do not contribute",
			games: []PlayedGame{
				playedGame([]string{"c", "a", "t"}, []string{"x", "y"}, 10),
				playedGame([]string{"_", "_", "_"}, []string{"b", "d", "e", "f", "g", "h"}, 0),
			},
			want: 12,
		},
		{
			name: "mean over contributing games",
			// (10/5 + 10) = 12 and (33/3 + 33) = 44, mean 28.
			games: []PlayedGame{
				playedGame([]string{"c", "a", "t"}, []string{"x", "y"}, 10),
				playedGame([]string{"c", "a", "t"}, nil, 33),
			},
			want: 28,
		},
		{
			name: "only zero-point games",
			games: []PlayedGame{
				playedGame([]string{"_", "_", "_"}, []string{"b", "d", "e", "f", "g", "h"}, 0),
			},
			want: 0,
		},
		{
			name: "missing score is skipped",
			games: []PlayedGame{
				{Game: &models.Game{Revealed: []string{"c"}}},
				playedGame([]string{"c", "a", "t"}, []string{"x", "y"}, 10),
			},
			want: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ranking(tt.games); got != tt.want {
				t.Errorf("Ranking() = %v, want %v", got, tt.want)
			}
		})
	}
}
