// internal/game/validate.go
//
// Guess well-formedness and novelty checks. Pure: no session state is
// touched here, so a failed validation leaves the turn untaken.

package game

import (
	"strings"

	"github.com/quintle/quintle/internal/words"
)

// Validate normalizes raw input and enforces the guess rules in order:
// exact length, dictionary membership, novelty against prior guesses.
// On success it returns the normalized uppercase word.
func Validate(raw string, history []string, dict *words.Dictionary) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(raw))
	if len(w) != words.Length {
		return "", ErrWrongLength
	}
	// Non-alphabetic input cannot be dictionary-resident, so membership
	// doubles as the character-class check.
	if !dict.Contains(w) {
		return "", ErrUnknownWord
	}
	for _, prior := range history {
		if prior == w {
			return "", ErrDuplicateGuess
		}
	}
	return w, nil
}
