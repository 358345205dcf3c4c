package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/edomerli/Gomoku/experiments"
)

const configPath = "config.yaml"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := experiments.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	if err := experiments.RunSelfPlay(cfg); err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
}
