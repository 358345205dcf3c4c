package searcher

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/edomerli/Gomoku/experiments/metrics"
	"github.com/edomerli/Gomoku/game"
)

const progressInterval = 100 // Iterations between progress log lines

type Option func(e *Engine)

// Engine owns one search tree per decision plus the cross-decision cache.
// A single search runs one iteration at a time: statistics mutation along a
// selection path is inherently sequential.
type Engine struct {
	oracle    game.Oracle
	budget    int
	cache     *Cache
	collector metrics.Collector
	root      *node
}

func WithBudget(budget int) Option {
	return func(e *Engine) {
		if budget >= 0 {
			e.budget = budget
		}
	}
}

// WithCache shares an explicit cache, e.g. one reset by the caller between
// games. The default engine starts with its own empty cache.
func WithCache(cache *Cache) Option {
	return func(e *Engine) {
		if cache != nil {
			e.cache = cache
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

func NewEngine(oracle game.Oracle, options ...Option) *Engine {
	e := &Engine{
		oracle:    oracle,
		budget:    DefaultBudget,
		cache:     NewCache(),
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Cache exposes the engine's tree-reuse cache so callers can reset it
// between games.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// ChooseMove runs a full search from state and returns the best root action
// together with every root action's exploitation-only score (its plain win
// rate), intended for logging and inspection.
func (e *Engine) ChooseMove(state game.State) (game.Action, map[game.Action]float64, error) {
	e.collector.Start(e.budget)

	root := e.cache.promote(state)
	e.collector.SetTreeReused(root != nil)
	if root == nil {
		var err error
		root, err = newNode(e.oracle, state, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("create root: %w", err)
		}
	}
	e.root = root

	for i := 0; i < e.budget; i++ {
		selected := e.selectNode(root)
		expanded, err := e.expand(selected)
		if err != nil {
			return nil, nil, err
		}
		result, err := e.rollout(expanded)
		if err != nil {
			return nil, nil, err
		}
		backup(expanded, result)
		e.collector.AddIteration()
		if (i+1)%progressInterval == 0 {
			log.Debug().Msgf("search progress: %d/%d", i+1, e.budget)
		}
	}

	if len(root.children) == 0 {
		return nil, nil, fmt.Errorf("%w: budget %d", ErrNoChildren, e.budget)
	}

	best, action, scores, ok := bestChild(root, 0)
	if !ok {
		// Every reply is proven lost. That is a decided position, not a
		// failure: fall back to the earliest child so the caller still gets
		// a move.
		first := root.children[0]
		best, action = first.child, first.action
	}
	e.cache.retain(best)
	return action, scores, nil
}

// selectNode descends the explored tree until it reaches a node that can
// still grow: one with untried actions, a terminal node, or a solved node.
func (e *Engine) selectNode(root *node) *node {
	n := root
	for !n.terminal && !n.solved {
		if n.expandable() {
			return n
		}
		child, _, _, ok := bestChild(n, Exploration)
		if !ok {
			return n // bestChild just proved n decided
		}
		n = child
	}
	return n
}

// expand grows one child from the oldest untried action. Terminal and solved
// nodes pass through unchanged.
func (e *Engine) expand(n *node) (*node, error) {
	if n.terminal || n.solved {
		return n, nil
	}
	action := n.popUntried()
	child, err := newNode(e.oracle, e.oracle.Apply(n.state, action), n)
	if err != nil {
		return nil, fmt.Errorf("expand %v: %w", action, err)
	}
	n.addChild(action, child)
	return child, nil
}

// rollout plays random moves from n's state until the game ends and scores
// the actual winner. Solved nodes skip simulation: their outcome is already
// known exactly. Terminal nodes never sample a move; they report the
// recorded result.
func (e *Engine) rollout(n *node) (reward, error) {
	if n.solved {
		e.collector.AddSolvedShortcut()
		return newReward(n.winner, true), nil
	}

	state := n.state
	over := n.terminal
	for !over {
		state = e.oracle.Apply(state, e.oracle.RandomAction(state))
		var err error
		over, err = e.oracle.IsOver(state)
		if err != nil {
			return reward{}, fmt.Errorf("classify rollout state: %w", err)
		}
	}
	if !n.terminal {
		e.collector.AddFullPlayout()
	}

	winner, won := e.oracle.Winner(state)
	return newReward(winner, won), nil
}

// backup walks from n to the root, at every node counting the visit and
// adding the reward earned by the player who moved into that node. A
// genuinely terminal n is conclusive information: its win value is pinned at
// a certain win for the mover who reached it and its parent becomes a proven
// loss, one level beyond ordinary backpropagation.
func backup(n *node, r reward) {
	if n.terminal {
		n.solveParent()
	}
	for walk := n; walk != nil; walk = walk.parent {
		walk.visits++
		if walk.parent != nil && !math.IsInf(walk.wins, 0) {
			walk.wins += r.of(walk.parent.player())
		}
	}
	if n.terminal {
		n.wins = float64(n.visits) * Win
	}
}
