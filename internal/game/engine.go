package game

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"hangman/internal/models"
)

// Stages lists the hangman figure parts in the order they are stored. Wrong
// guesses unlock them back to front: the first wrong guess draws the head,
// the last one the left leg.
var Stages = []string{"left_leg", "right_leg", "left_arm", "right_arm", "body", "head"}

// WinBonus is the flat bonus awarded on top of per-letter points when the
// word is completed.
const WinBonus = 30

// NewGame builds the initial state for a round over the given word: every
// position masked, full wrong-guess allowance, no stages drawn.
func NewGame(word string) *models.Game {
	revealed := make([]string, 0, len(word))
	for range word {
		revealed = append(revealed, models.Placeholder)
	}
	return &models.Game{
		Word:              word,
		Revealed:          revealed,
		IncorrectGuesses:  []string{},
		AttemptsRemaining: len(Stages),
		Hangman:           []string{},
	}
}

// Apply plays one letter against the game, updating the game and score in
// place and returning the outcome message and the resulting status.
//
// Callers pass clones of the persisted entities: on error nothing has been
// touched, on success the mutated pair is committed as one unit. The letter
// is compared exactly against the stored word, so callers normalize case the
// same way words are stored (lowercase).
func Apply(g *models.Game, s *models.Score, letter string) (string, models.Status, error) {
	switch g.Status() {
	case models.StatusWon, models.StatusLost:
		return "", g.Status(), ErrGameOver
	case models.StatusCancelled:
		return "", models.StatusCancelled, ErrGameCancelled
	}

	if utf8.RuneCountInString(letter) != 1 {
		return "", models.StatusActive, ErrGuessLength
	}
	r, _ := utf8.DecodeRuneInString(letter)
	if !unicode.IsLetter(r) {
		return "", models.StatusActive, ErrGuessNotLetter
	}

	var msg string
	if containsLetter(g.Word, letter) {
		// Reveal every matching position and award a point per position.
		// Repeating a correct letter re-reveals and re-awards the same
		// positions, matching the count-occurrences scoring.
		for i, c := range g.Word {
			if string(c) == letter {
				g.Revealed[i] = letter
				s.Points++
			}
		}
		msg = fmt.Sprintf("You guessed right. The game word does contain the letter %s.", letter)
	} else {
		// Stage index is taken before the decrement, so stages unlock in
		// reverse list order.
		g.Hangman = append(g.Hangman, Stages[g.AttemptsRemaining-1])
		g.AttemptsRemaining--
		g.IncorrectGuesses = append(g.IncorrectGuesses, letter)
		msg = fmt.Sprintf("Sorry, the game word does not contain the letter %s.", letter)
	}

	// Win takes priority over loss.
	if g.WordComplete() {
		g.GameOver = true
		s.Points += WinBonus
		s.Won = true
		msg = "You win!"
	} else if g.AttemptsRemaining < 1 {
		g.GameOver = true
		msg += " Sorry, game over!"
	}

	return msg, g.Status(), nil
}

// Cancel marks an active game as cancelled. Cancellation is only legal from
// the active state; it is terminal but counts as neither win nor loss.
func Cancel(g *models.Game) error {
	switch g.Status() {
	case models.StatusWon, models.StatusLost:
		return ErrGameOver
	case models.StatusCancelled:
		return ErrGameCancelled
	}
	g.GameCancelled = true
	return nil
}

func containsLetter(word, letter string) bool {
	for _, c := range word {
		if string(c) == letter {
			return true
		}
	}
	return false
}
