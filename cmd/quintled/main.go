// cmd/quintled/main.go
//
// API server binary: serves the game engine over JSON/HTTP with in-memory
// sessions. Configuration comes from the environment (and .env in dev).

package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quintle/quintle/internal/httpserver"
	"github.com/quintle/quintle/internal/store"
	"github.com/quintle/quintle/internal/words"
)

type config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := words.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, dict, cfg.ClientOrigin)
	log.Info().Str("port", cfg.Port).Msg("starting quintled")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
