package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintle/quintle/internal/words"
)

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.New(
		[]string{"reach", "smart", "snout", "crane", "stone", "board", "flame", "ghost"},
		[]string{"arche", "artsy", "array"},
	)
	require.NoError(t, err)
	return d
}

func TestNewExplicitSolution(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, " reach ")
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, s.Status())
	assert.NotEmpty(t, s.ID)

	// Guess-only words are valid solutions too; they pass the same checks.
	_, err = New(dict, "arche")
	assert.NoError(t, err)

	for _, bad := range []string{"zzzzz", "ape", "nights", "reachy"} {
		_, err := New(dict, bad)
		assert.ErrorIs(t, err, ErrInvalidSolution, bad)
	}
}

func TestNewRandomSolution(t *testing.T) {
	dict := testDict(t)
	s, err := New(dict, "")
	require.NoError(t, err)

	// The random solution is hidden, but winning reveals it as an answer word.
	var status Status
	for _, w := range []string{"reach", "smart", "snout", "crane", "stone", "board"} {
		_, status, err = s.SubmitGuess(w)
		require.NoError(t, err)
		if status != StatusPlaying {
			break
		}
	}
	require.NotEqual(t, StatusPlaying, status)
	assert.True(t, dict.IsAnswer(s.Reveal()))
}

func TestWinOnAnyTurn(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "reach")
	require.NoError(t, err)

	g, status, err := s.SubmitGuess("reach")
	require.NoError(t, err)
	assert.Equal(t, StatusWon, status)
	assert.True(t, g.Correct())
	assert.Equal(t, 1, s.Turn())
}

func TestLossAfterMaxTurns(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "reach")
	require.NoError(t, err)

	misses := []string{"smart", "snout", "crane", "stone", "board", "ghost"}
	for i, w := range misses {
		_, status, err := s.SubmitGuess(w)
		require.NoError(t, err)
		if i < MaxTurns-1 {
			assert.Equal(t, StatusPlaying, status)
		} else {
			assert.Equal(t, StatusLost, status)
		}
	}
	assert.Equal(t, MaxTurns, s.Turn())
}

func TestTerminalStatusIsStable(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "reach")
	require.NoError(t, err)
	_, status, err := s.SubmitGuess("reach")
	require.NoError(t, err)
	require.Equal(t, StatusWon, status)

	for i := 0; i < 3; i++ {
		_, status, err := s.SubmitGuess("smart")
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, StatusWon, status)
	}
	assert.Equal(t, 1, s.Turn())
}

func TestValidationFailureDoesNotMutate(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "reach")
	require.NoError(t, err)

	// Same invalid guess twice yields the same error kind both times.
	for i := 0; i < 2; i++ {
		_, status, err := s.SubmitGuess("ape")
		assert.ErrorIs(t, err, ErrWrongLength)
		assert.Equal(t, StatusPlaying, status)
	}
	_, _, err = s.SubmitGuess("zzzzz")
	assert.ErrorIs(t, err, ErrUnknownWord)

	assert.Equal(t, 0, s.Turn())
	assert.Empty(t, s.History())
	assert.Empty(t, s.WrongLetters())
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", s.UnusedLetters())
}

func TestDuplicateGuessRejected(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "reach")
	require.NoError(t, err)
	_, _, err = s.SubmitGuess("smart")
	require.NoError(t, err)

	for _, raw := range []string{"smart", "SMART", " Smart "} {
		_, _, err := s.SubmitGuess(raw)
		assert.ErrorIs(t, err, ErrDuplicateGuess, raw)
	}
	assert.Equal(t, 1, s.Turn())
}

func TestLetterTrays(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "reach")
	require.NoError(t, err)

	// SNOUT shares nothing with REACH: all five letters land in the wrong
	// tray and leave the unused tray.
	_, _, err = s.SubmitGuess("snout")
	require.NoError(t, err)
	assert.Equal(t, "NOSTU", s.WrongLetters())
	for _, l := range []string{"S", "N", "O", "U", "T"} {
		assert.NotContains(t, s.UnusedLetters(), l)
	}

	// Trays are monotonic: another guess only ever grows wrong and
	// shrinks unused.
	wrongBefore, unusedBefore := s.WrongLetters(), s.UnusedLetters()
	_, _, err = s.SubmitGuess("smart")
	require.NoError(t, err)
	for _, l := range strings.Split(wrongBefore, "") {
		assert.Contains(t, s.WrongLetters(), l)
	}
	for _, l := range strings.Split(s.UnusedLetters(), "") {
		assert.Contains(t, unusedBefore, l)
	}

	// Wrong letters never include letters present in the solution.
	for _, l := range strings.Split(s.WrongLetters(), "") {
		assert.NotContains(t, "REACH", l)
	}
}

func TestWrongTrayWithSurplusDuplicate(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "smart")
	require.NoError(t, err)

	// ARRAY's second R scores absent, but R occurs in SMART so it must not
	// be reported as a wrong letter.
	_, _, err = s.SubmitGuess("array")
	require.NoError(t, err)
	assert.Equal(t, "Y", s.WrongLetters())
}

func TestRevealOnlyWhenOver(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "reach")
	require.NoError(t, err)
	assert.Empty(t, s.Reveal())

	_, _, err = s.SubmitGuess("reach")
	require.NoError(t, err)
	assert.Equal(t, "REACH", s.Reveal())
}

func TestEndMessage(t *testing.T) {
	dict := testDict(t)

	s, err := New(dict, "reach")
	require.NoError(t, err)

	assert.Equal(t, "The word was REACH! You got it in 3 guesses.", s.EndMessage(StatusWon, 3))
	assert.Equal(t, "So close! The word was REACH.", s.EndMessage(StatusLost, 6))
	assert.Equal(t, "Invalid status code.", s.EndMessage(StatusPlaying, 1))
	assert.Equal(t, "Invalid status code.", s.EndMessage(Status(42), 1))
}
