// Package searcher implements Monte Carlo tree search for deterministic,
// perfect-information two-player games played through a game.Oracle.
package searcher

import "github.com/edomerli/Gomoku/game"

// Hyperparameters for MCTS

const DefaultBudget = 1000 // Simulations per move decision

const Exploration = 1.0 // UCB exploration constant during selection

const Win = 1.0  // Reward for a winning outcome
const Loss = 0.0 // Reward for a losing outcome

// scoreFloor is the sentinel a child score must strictly beat during
// selection. Children proven lost from the parent's perspective score -Inf
// and can never beat it; when no child does, the node itself is decided.
const scoreFloor = -1.0

// reward holds the outcome of one playout, one slot per player.
type reward [2]float64

func newReward(winner game.Player, won bool) reward {
	var r reward
	if won {
		r[winner] = Win
	}
	return r
}

func (r reward) of(p game.Player) float64 {
	return r[p]
}
