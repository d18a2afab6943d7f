// internal/game/session.go
//
// Game session state machine for a single round.
// Responsibilities:
//   - Create sessions with a random or explicitly supplied solution.
//   - Orchestrate a turn: validate → score → record → termination check.
//   - Track guess history and the wrong/unused letter trays.
//
// The solution is an unexported field. Outside this package it is readable
// only through EndMessage and, after the session is over, Reveal.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/quintle/quintle/internal/words"
)

// MaxTurns is the number of attempts before a session is lost.
const MaxTurns = 6

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Session holds all state for one game: the hidden solution, the scored
// guess history, the accumulated letter trays, and the current status.
// A Session is not safe for concurrent use; each game owns exactly one.
type Session struct {
	ID string

	solution string
	dict     *words.Dictionary

	history []Guess
	guessed [26]bool // letters attempted, any accuracy
	wrong   [26]bool // letters confirmed absent from the solution
	status  Status
}

// New constructs a Session. If solution is empty a random answer is drawn
// from the dictionary; otherwise the supplied word must pass the same
// length and membership checks as a guess, and construction is rejected
// with ErrInvalidSolution when it does not.
func New(dict *words.Dictionary, solution string) (*Session, error) {
	s := &Session{ID: randomID(), dict: dict}
	if solution == "" {
		s.solution = dict.Random()
		return s, nil
	}
	w := strings.ToUpper(strings.TrimSpace(solution))
	if len(w) != words.Length || !dict.Contains(w) {
		return nil, ErrInvalidSolution
	}
	s.solution = w
	return s, nil
}

// SubmitGuess runs one full turn: validation, scoring, history append,
// tray updates, termination check. On a validation failure nothing is
// mutated and the caller re-prompts for the same turn. Once the status is
// terminal every further call fails with ErrGameOver.
func (s *Session) SubmitGuess(raw string) (Guess, Status, error) {
	if s.status != StatusPlaying {
		return Guess{}, s.status, ErrGameOver
	}
	w, err := Validate(raw, s.Words(), s.dict)
	if err != nil {
		return Guess{}, s.status, err
	}

	g := Guess{Word: w, Letters: Score(w, s.solution)}
	s.history = append(s.history, g)
	s.markLetters(w)
	s.status = checkOver(len(s.history), g)
	return g, s.status, nil
}

// markLetters records every guessed letter as used and, when the letter
// does not occur in the solution at all, as wrong. A surplus duplicate that
// scored absent stays out of the wrong tray if the solution holds the letter.
func (s *Session) markLetters(word string) {
	for i := 0; i < len(word); i++ {
		j := idx(word[i])
		s.guessed[j] = true
		if !strings.Contains(s.solution, string(word[i])) {
			s.wrong[j] = true
		}
	}
}

// checkOver decides the session status after a scored guess: won whenever
// all five letters are correct, on any turn; lost when the turn budget is
// spent without a win; playing otherwise.
func checkOver(turn int, latest Guess) Status {
	if latest.Correct() {
		return StatusWon
	}
	if turn >= MaxTurns {
		return StatusLost
	}
	return StatusPlaying
}

// Status returns the current session status.
func (s *Session) Status() Status { return s.status }

// Turn returns the number of guesses recorded so far.
func (s *Session) Turn() int { return len(s.history) }

// History returns a copy of the scored guesses in turn order.
func (s *Session) History() []Guess {
	out := make([]Guess, len(s.history))
	copy(out, s.history)
	return out
}

// Words returns the normalized words guessed so far, in turn order.
func (s *Session) Words() []string {
	out := make([]string, len(s.history))
	for i, g := range s.history {
		out[i] = g.Word
	}
	return out
}

// WrongLetters returns the letters confirmed absent from the solution,
// in alphabetical order. The set only ever grows.
func (s *Session) WrongLetters() string { return s.tray(s.wrong, true) }

// UnusedLetters returns the letters not attempted yet, in alphabetical
// order. The set only ever shrinks, starting from the full alphabet.
func (s *Session) UnusedLetters() string { return s.tray(s.guessed, false) }

func (s *Session) tray(set [26]bool, want bool) string {
	var b strings.Builder
	for i := 0; i < 26; i++ {
		if set[i] == want {
			b.WriteByte(alphabet[i])
		}
	}
	return b.String()
}

// Reveal returns the solution once the session is over and the empty
// string while it is still in play.
func (s *Session) Reveal() string {
	if s.status == StatusPlaying {
		return ""
	}
	return s.solution
}

// randomID returns a compact 16-hex-char session identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
