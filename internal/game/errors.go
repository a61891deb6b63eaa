package game

import "errors"

// Sentinel errors returned by the engine and surfaced through the service
// layer. Handlers map these to HTTP status codes with errors.Is.
var (
	// ErrGameOver is returned when a guess or cancellation targets a game
	// that has already been won or lost.
	ErrGameOver = errors.New("game already over")

	// ErrGameCancelled is returned when a guess targets a cancelled game.
	ErrGameCancelled = errors.New("game has been cancelled")

	// ErrGuessLength is returned when the guess is not exactly one character.
	ErrGuessLength = errors.New("you can only guess one letter")

	// ErrGuessNotLetter is returned when the guessed character is not alphabetic.
	ErrGuessNotLetter = errors.New("the guess must be a letter")
)
