package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accuracies(letters []ScoredLetter) []Accuracy {
	out := make([]Accuracy, len(letters))
	for i, l := range letters {
		out[i] = l.Accuracy
	}
	return out
}

func TestScore(t *testing.T) {
	c, m, a := AccuracyCorrect, AccuracyMisplaced, AccuracyAbsent

	tests := []struct {
		name     string
		guess    string
		solution string
		want     []Accuracy
	}{
		{"exact match", "REACH", "REACH", []Accuracy{c, c, c, c, c}},
		{"anagram is all misplaced", "ARCHE", "REACH", []Accuracy{m, m, m, m, m}},
		{"no overlap is all absent", "SNOUT", "REACH", []Accuracy{a, a, a, a, a}},
		{"shifted letters", "ARTSY", "SMART", []Accuracy{m, m, m, m, a}},
		{"surplus duplicates go absent", "ARRAY", "SMART", []Accuracy{m, m, a, a, a}},
		{"duplicates with exact matches", "EERIE", "GEESE", []Accuracy{m, c, a, a, c}},
		{"exact match consumes the letter", "LLAMA", "LOYAL", []Accuracy{c, m, m, a, a}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.guess, tt.solution)
			require.Len(t, got, 5)
			assert.Equal(t, tt.want, accuracies(got))
			for i, l := range got {
				assert.Equal(t, string(tt.guess[i]), l.Letter)
			}
		})
	}
}

// A single solution letter must never be credited to more guessed positions
// than its multiplicity allows.
func TestScoreConservation(t *testing.T) {
	pairs := []struct{ guess, solution string }{
		{"ARRAY", "SMART"},
		{"EERIE", "GEESE"},
		{"ARTSY", "SMART"},
		{"SPOON", "SNOUT"},
	}
	for _, p := range pairs {
		got := Score(p.guess, p.solution)
		credit := map[string]int{}
		for _, l := range got {
			if l.Accuracy != AccuracyAbsent {
				credit[l.Letter]++
			}
		}
		for letter, n := range credit {
			have := 0
			for i := 0; i < len(p.solution); i++ {
				if string(p.solution[i]) == letter {
					have++
				}
			}
			assert.LessOrEqualf(t, n, have, "%s vs %s: letter %s over-credited", p.guess, p.solution, letter)
		}
	}
}
