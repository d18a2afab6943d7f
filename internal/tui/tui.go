// internal/tui/tui.go
//
// Colorized terminal front end for a single game session.
// Responsibilities:
//   - Render the scored guess grid (green/yellow/gray tiles).
//   - Show the wrong and unused letter trays between turns.
//   - Prompt for guesses, re-prompting on validation errors.
//   - Print the end-of-game message once the session is terminal.
//
// All game rules live in the game package; this package only renders and
// feeds raw input lines into Session.SubmitGuess.

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/quintle/quintle/internal/game"
	"github.com/quintle/quintle/internal/words"
)

var (
	correctStyle   = pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	misplacedStyle = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	absentStyle    = pterm.NewStyle(pterm.BgDarkGray, pterm.FgWhite)
)

// Run plays one full game on the terminal. If solution is non-empty it is
// used as the fixed answer; construction fails for words the dictionary
// rejects.
func Run(dict *words.Dictionary, solution string) error {
	sess, err := game.New(dict, solution)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	printTitle()

	for sess.Status() == game.StatusPlaying {
		printBoard(sess)
		prompt := fmt.Sprintf("Guess %d of %d", sess.Turn()+1, game.MaxTurns)
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()

		_, status, err := sess.SubmitGuess(raw)
		if err != nil {
			pterm.Error.Println(errorText(err))
			continue
		}
		if status != game.StatusPlaying {
			printBoard(sess)
			pterm.Println()
			if status == game.StatusWon {
				pterm.Success.Println(sess.EndMessage(status, sess.Turn()))
			} else {
				pterm.Warning.Println(sess.EndMessage(status, sess.Turn()))
			}
		}
	}
	return nil
}

// printTitle renders the banner shown once at startup.
func printTitle() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Quin", pterm.FgGreen.ToStyle()),
		putils.LettersFromStringWithStyle("tle", pterm.FgYellow.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println()
}

// printBoard renders the guess history grid plus the letter trays.
func printBoard(sess *game.Session) {
	pterm.Println()
	for _, g := range sess.History() {
		pterm.Println("  " + renderGuess(g))
	}
	if sess.Turn() > 0 {
		pterm.Println()
		if wrong := sess.WrongLetters(); wrong != "" {
			pterm.Printfln("  Wrong letters:  %s", spaced(wrong))
		}
		pterm.Printfln("  Unused letters: %s", spaced(sess.UnusedLetters()))
		pterm.Println()
	}
}

// renderGuess colors each scored letter as a tile.
func renderGuess(g game.Guess) string {
	var b strings.Builder
	for _, l := range g.Letters {
		tile := " " + l.Letter + " "
		switch l.Accuracy {
		case game.AccuracyCorrect:
			b.WriteString(correctStyle.Sprint(tile))
		case game.AccuracyMisplaced:
			b.WriteString(misplacedStyle.Sprint(tile))
		default:
			b.WriteString(absentStyle.Sprint(tile))
		}
		b.WriteString(" ")
	}
	return b.String()
}

// spaced spreads a letter tray string for readability: "ABC" → "A B C".
func spaced(letters string) string {
	return strings.Join(strings.Split(letters, ""), " ")
}

// errorText maps engine errors to the line shown above the re-prompt.
func errorText(err error) string {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		return "Your guess must be exactly 5 letters."
	case errors.Is(err, game.ErrUnknownWord):
		return "That word is not in the word list."
	case errors.Is(err, game.ErrDuplicateGuess):
		return "You already tried that word."
	default:
		return err.Error()
	}
}
