// internal/game/message.go
//
// End-of-game message formatting. Pure: reads the solution, mutates nothing.

package game

import "fmt"

// EndMessage maps a terminal status and turn count to the final line shown
// to the player. Any non-terminal or unknown status yields the invalid-code
// message, so callers that pass a stale status fail loudly rather than
// leaking the solution early.
func (s *Session) EndMessage(status Status, turn int) string {
	switch status {
	case StatusWon:
		return fmt.Sprintf("The word was %s! You got it in %d guesses.", s.solution, turn)
	case StatusLost:
		return fmt.Sprintf("So close! The word was %s.", s.solution)
	default:
		return "Invalid status code."
	}
}
