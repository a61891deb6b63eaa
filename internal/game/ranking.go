package game

import "hangman/internal/models"

// PlayedGame pairs a game with its score for ranking aggregation.
type PlayedGame struct {
	Game  *models.Game
	Score *models.Score
}

// Ranking aggregates a user's games into a single ranking value.
//
// Each game with a positive score and at least one guess contributes
// points/total_guesses + points, where total_guesses counts revealed
// positions plus incorrect guesses. The final ranking is the mean over the
// contributing games, or zero when none contributed.
//
// The historical computation divided by a loop counter left over from
// iteration and used integer division; both were judged defects, so this
// uses real division and divides by the contributing-game count.
func Ranking(games []PlayedGame) float64 {
	var total float64
	contributing := 0

	for _, pg := range games {
		if pg.Game == nil || pg.Score == nil {
			continue
		}
		totalGuesses := pg.Game.RevealedCount() + len(pg.Game.IncorrectGuesses)
		if pg.Score.Points > 0 && totalGuesses > 0 {
			points := float64(pg.Score.Points)
			total += points/float64(totalGuesses) + points
			contributing++
		}
	}

	if contributing == 0 {
		return 0
	}
	return total / float64(contributing)
}
