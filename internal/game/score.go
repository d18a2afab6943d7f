// internal/game/score.go
//
// Two-pass frequency-correct scoring of a guess against the solution.

package game

// Score compares a validated uppercase guess to the solution and returns one
// ScoredLetter per position, in guess order.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) solution letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark misplaced and decrement the count; otherwise mark absent.
//
// Decrementing the count is what keeps repeated letters honest: a guess with
// two 'A's against a solution holding one 'A' credits misplaced at most once,
// and the surplus 'A' comes back absent.
func Score(guess, solution string) []ScoredLetter {
	n := len(solution)
	out := make([]ScoredLetter, n)

	// Letter frequency for the non-correct positions (A–Z).
	var counts [26]int

	// First pass: exact matches and counts for remaining solution letters.
	for i := 0; i < n; i++ {
		out[i].Letter = string(guess[i])
		if guess[i] == solution[i] {
			out[i].Accuracy = AccuracyCorrect
		} else {
			counts[idx(solution[i])]++
		}
	}

	// Second pass: resolve misplaced/absent for the rest.
	for i := 0; i < n; i++ {
		if out[i].Accuracy == AccuracyCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			out[i].Accuracy = AccuracyMisplaced
			counts[j]--
		} else {
			out[i].Accuracy = AccuracyAbsent
		}
	}
	return out
}

// idx maps an uppercase ASCII letter to 0..25.
// Inputs are validated to A–Z elsewhere.
func idx(b byte) int { return int(b - 'A') }
