// Package experiments runs self-play matches and records their statistics.
package experiments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/edomerli/Gomoku/engine"
	"github.com/edomerli/Gomoku/experiments/metrics"
	"github.com/edomerli/Gomoku/game"
	"github.com/edomerli/Gomoku/searcher"
)

// RunSelfPlay plays cfg.Games games of the configured gomoku variant between
// two identical search agents and writes game and move records as CSV.
func RunSelfPlay(cfg Config) error {
	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("create metrics writer: %w", err)
	}
	log.Info().Msgf("running %d self-play games (board %dx%d, connect %d, budget %d)",
		cfg.Games, cfg.BoardSize, cfg.BoardSize, cfg.WinLength, cfg.Budget)

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for i := 0; i < cfg.Games; i++ {
		// A fresh oracle per game keeps rollout sampling reproducible per seed.
		oracle := game.NewGomoku(cfg.BoardSize, cfg.WinLength, cfg.Seed+uint64(i))
		black := newAgent(oracle, cfg.Budget)
		white := newAgent(oracle, cfg.Budget)
		local := engine.NewLocal(oracle, oracle.NewGame(), black, white)

		id := uuid.NewString()
		startTime := time.Now()
		winner, won, moves, err := local.Run()
		if err != nil {
			return fmt.Errorf("game %s: %w", id, err)
		}
		endTime := time.Now()

		name := ""
		if won {
			name = winner.String()
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Winner:     name,
			StartTime:  startTime,
			EndTime:    endTime,
			Duration:   endTime.Sub(startTime),
			TotalMoves: len(moves),
		})
		for _, move := range moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: move})
		}

		if won {
			log.Info().Msgf("game %d/%d over: %s won in %d moves", i+1, cfg.Games, name, len(moves))
		} else {
			log.Info().Msgf("game %d/%d over: draw after %d moves", i+1, cfg.Games, len(moves))
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("write move records: %w", err)
	}
	log.Info().Msgf("records written to %s", writer.BaseDir())
	return nil
}

func newAgent(oracle game.Oracle, budget int) engine.Agent {
	collector := metrics.NewCollector()
	search := searcher.NewEngine(oracle,
		searcher.WithBudget(budget),
		searcher.WithCollector(collector),
	)
	return engine.NewSearchAgent(search, collector)
}
