// Package engine drives local games between move-picking agents.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/edomerli/Gomoku/experiments/metrics"
	"github.com/edomerli/Gomoku/game"
)

const MaxMoves = 10000

// Local plays a game on a single oracle until a decisive result, a full
// board, or the move cap.
type Local struct {
	oracle game.Oracle
	state  game.State
	agents [2]Agent
}

func NewLocal(oracle game.Oracle, start game.State, black, white Agent) *Local {
	return &Local{
		oracle: oracle,
		state:  start,
		agents: [2]Agent{game.Black: black, game.White: white},
	}
}

// Run executes the game loop and returns the winner (won is false on a draw
// or when the move cap was hit) plus per-move search metrics.
func (l *Local) Run() (winner game.Player, won bool, moves []metrics.MoveMetric, err error) {
	log.Info().Msgf("%s is starting", l.state.Player())

	for step := 1; step <= MaxMoves; step++ {
		over, err := l.oracle.IsOver(l.state)
		if err != nil {
			return 0, false, moves, fmt.Errorf("classify state: %w", err)
		}
		if over {
			break
		}

		mover := l.state.Player()
		action, metric, err := l.agents[mover].FindMove(l.state)
		if err != nil {
			return 0, false, moves, fmt.Errorf("find move for %s: %w", mover, err)
		}

		l.state = l.oracle.Apply(l.state, action)
		moves = append(moves, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			SearchMetric: metric,
		})
	}

	winner, won = l.oracle.Winner(l.state)
	return winner, won, moves, nil
}

// State returns the current position.
func (l *Local) State() game.State {
	return l.state
}
