// assets/embed.go
//
// Embedded default word lists so the binaries run without any configuration.
// Lines are trimmed and "#" comment lines are skipped. Normalization to
// uppercase happens in the words package.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// AnswersList returns the embedded canonical solution words.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded guess-only words.
// Answers are merged in separately by the words package.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
