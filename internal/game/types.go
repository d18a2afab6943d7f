// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Accuracy: per-letter result of a guess (correct/misplaced/absent).
//   - ScoredLetter: one guessed letter plus its accuracy.
//   - Guess: a full scored attempt at the solution.
//   - Status: session state (playing/won/lost).

package game

import "fmt"

// Accuracy classifies a single letter of a guess against the solution.
// Possible values:
//   - "correct":   letter is in the solution at this exact position.
//   - "misplaced": letter is in the solution but at a different position.
//   - "absent":    letter does not occur in the solution (or its
//     occurrences are already accounted for).
type Accuracy string

const (
	AccuracyCorrect   Accuracy = "correct"
	AccuracyMisplaced Accuracy = "misplaced"
	AccuracyAbsent    Accuracy = "absent"
)

// ScoredLetter pairs one uppercase letter of a guess with its accuracy.
// Produced only by Score; never mutated afterwards.
type ScoredLetter struct {
	Letter   string   `json:"letter"`
	Accuracy Accuracy `json:"accuracy"`
}

// Guess is one submitted word's evaluation: the normalized uppercase word
// and its five scored letters, in guess order.
type Guess struct {
	Word    string         `json:"word"`
	Letters []ScoredLetter `json:"letters"`
}

// Correct reports whether every letter of the guess matched exactly.
func (g Guess) Correct() bool {
	for _, l := range g.Letters {
		if l.Accuracy != AccuracyCorrect {
			return false
		}
	}
	return true
}

// Status is the lifecycle state of a Session. It starts at StatusPlaying and
// transitions to StatusWon or StatusLost exactly once; both are terminal.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the wire/display name of the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its string name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a status from its string name.
func (s *Status) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"playing"`:
		*s = StatusPlaying
	case `"won"`:
		*s = StatusWon
	case `"lost"`:
		*s = StatusLost
	default:
		return fmt.Errorf("unknown status %s", b)
	}
	return nil
}
