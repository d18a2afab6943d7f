// cmd/quintle/main.go
//
// Terminal game binary: loads the dictionary and runs one interactive game.
//
// Flags:
//   -word WORD   play against a fixed solution (must be a dictionary word)
//
// Environment:
//   LOG_LEVEL            zerolog level (default "info")
//   WORDS_ANSWERS_FILE   optional answers list path
//   WORDS_ALLOWED_FILE   optional allowed-guesses list path

package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quintle/quintle/internal/tui"
	"github.com/quintle/quintle/internal/words"
)

func main() {
	word := flag.String("word", "", "fixed solution word (for practice or testing)")
	flag.Parse()

	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := words.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	if err := tui.Run(dict, *word); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
