// internal/game/errors.go
//
// Sentinel errors for guess validation and session lifecycle. All are
// recoverable at the turn level: callers match with errors.Is and re-prompt.

package game

import "errors"

var (
	// ErrWrongLength is returned when a guess is not exactly 5 letters.
	ErrWrongLength = errors.New("guess must be exactly 5 letters")

	// ErrUnknownWord is returned when a guess is not in the word list.
	ErrUnknownWord = errors.New("not in word list")

	// ErrDuplicateGuess is returned when the same word was already
	// guessed earlier in the session.
	ErrDuplicateGuess = errors.New("word already guessed")

	// ErrGameOver is returned when a guess arrives after the session
	// reached a terminal status.
	ErrGameOver = errors.New("game is already over")

	// ErrInvalidSolution is returned by New when an explicitly supplied
	// solution fails the same checks as a guess.
	ErrInvalidSolution = errors.New("invalid solution word")
)
