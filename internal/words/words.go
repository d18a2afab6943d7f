// internal/words/words.go
//
// Dictionary of accepted 5-letter words.
//
// Responsibilities:
//   - Load answer and allowed guess lists from environment-provided files or
//     fall back to the embedded defaults in the assets package.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply uniform random solution selection.
//
// Word lists:
//   - "answers": canonical solutions (exactly 5 letters).
//   - "allowed": valid guesses (always includes answers).
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// Constraints:
//   • Words must be 5 ASCII letters.
//   • Lists are normalized to uppercase; the game engine works in uppercase.
//   • Default() initialization runs once (sync.Once).

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/quintle/quintle/assets"
)

// Length is the number of letters in every dictionary word.
const Length = 5

// Dictionary is an immutable set of accepted words plus the canonical
// answer list used for random solution selection. All words are uppercase.
type Dictionary struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ guesses
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// New builds a Dictionary from raw word lists. Entries are uppercased and
// anything that is not exactly 5 ASCII letters is dropped. Answers are always
// part of the allowed set. Returns an error if no valid answers remain.
func New(answers, allowed []string) (*Dictionary, error) {
	d := &Dictionary{
		answersSet: make(map[string]struct{}),
		allowedSet: make(map[string]struct{}),
	}
	for _, w := range answers {
		w = normalize(w)
		if w == "" {
			continue
		}
		if _, dup := d.answersSet[w]; dup {
			continue
		}
		d.answers = append(d.answers, w)
		d.answersSet[w] = struct{}{}
		d.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		w = normalize(w)
		if w == "" {
			continue
		}
		d.allowedSet[w] = struct{}{}
	}
	if len(d.answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	return d, nil
}

// Default loads the shared Dictionary exactly once.
//
// Initialization behavior:
//  1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//     load answers from the first and allowed guesses from the second.
//  2. If only WORDS_ALLOWED_FILE is set, load that file and use it for both.
//  3. Otherwise fall back to the embedded lists in the assets package.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		var ansList, allowList []string

		answersPath := os.Getenv("WORDS_ANSWERS_FILE")
		allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided
		case answersPath != "" && allowedPath != "":
			var err error
			ansList, err = readWordFile(answersPath)
			if err != nil {
				defaultErr = err
				return
			}
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				defaultErr = err
				return
			}

		// Case 2: only allowed file provided → use for both
		case answersPath == "" && allowedPath != "":
			var err error
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				defaultErr = err
				return
			}
			ansList = allowList

		// Case 3: embedded defaults
		default:
			var err error
			ansList, err = assets.AnswersList()
			if err != nil {
				defaultErr = err
				return
			}
			allowList, err = assets.AllowedList()
			if err != nil {
				defaultErr = err
				return
			}
		}

		defaultDict, defaultErr = New(ansList, allowList)
	})
	return defaultDict, defaultErr
}

// Contains reports whether w is a valid guess (answers ∪ guesses).
// The check is case-insensitive.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.allowedSet[strings.ToUpper(w)]
	return ok
}

// IsAnswer reports whether w is a canonical answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[strings.ToUpper(w)]
	return ok
}

// Random returns a uniformly random answer word using crypto/rand entropy.
func (d *Dictionary) Random() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	return d.answers[nBig.Int64()]
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowedSet)
}

// normalize uppercases w and returns "" if it is not a valid dictionary word.
func normalize(w string) string {
	w = strings.ToUpper(strings.TrimSpace(w))
	if len(w) != Length || !isAlpha(w) {
		return ""
	}
	return w
}

// readWordFile loads one word per line from a file.
// Comment and blank lines are dropped; word validation happens in New.
func readWordFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
