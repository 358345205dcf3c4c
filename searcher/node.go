package searcher

import (
	"fmt"
	"math"

	"github.com/edomerli/Gomoku/game"
)

type edge struct {
	action game.Action
	child  *node
}

// node is one vertex of the search tree. wins accumulates rewards for the
// player who moved into the node (the parent's mover), not the node's own
// mover: UCB at a node ranks children by how good they are for the player
// choosing among them. children keep insertion order because it doubles as
// the tie-break order for selection; untried is consumed front to back.
type node struct {
	state    game.State
	parent   *node
	children []edge
	untried  []game.Action

	wins   float64
	visits int

	terminal bool
	solved   bool
	winner   game.Player
}

// newNode builds a node owning a deep copy of state, with its untried queue
// seeded from the oracle's legal actions in oracle order.
func newNode(oracle game.Oracle, state game.State, parent *node) (*node, error) {
	owned := state.Clone()
	over, err := oracle.IsOver(owned)
	if err != nil {
		return nil, fmt.Errorf("classify state: %w", err)
	}
	var untried []game.Action
	if !over {
		actions := oracle.LegalActions(owned)
		if len(actions) == 0 {
			return nil, fmt.Errorf("%w: state %d", ErrNoLegalActions, owned.Hash())
		}
		untried = make([]game.Action, len(actions))
		copy(untried, actions)
	}
	return &node{
		state:    owned,
		parent:   parent,
		untried:  untried,
		terminal: over,
	}, nil
}

func (n *node) player() game.Player {
	return n.state.Player()
}

// expandable reports whether selection should stop at n to grow a new child.
func (n *node) expandable() bool {
	return len(n.untried) > 0
}

// popUntried removes and returns the oldest untried action.
func (n *node) popUntried() game.Action {
	a := n.untried[0]
	n.untried = n.untried[1:]
	return a
}

func (n *node) addChild(a game.Action, child *node) {
	n.children = append(n.children, edge{action: a, child: child})
}

// markUnwinnable records that n's mover loses against optimal replies: every
// child is already decided against them. From the parent's viewpoint n is a
// certain win, so its value is pinned at +Inf; the parent in turn becomes a
// proven loss. The mark stops there, one level up, never recursing further.
func (n *node) markUnwinnable() {
	n.solved = true
	n.winner = n.player().Opponent()
	n.wins = math.Inf(1)
	n.solveParent()
}

// solveParent marks n's parent as decided against its own mover.
func (n *node) solveParent() {
	p := n.parent
	if p == nil {
		return
	}
	p.solved = true
	p.winner = p.player().Opponent()
	p.wins = math.Inf(-1)
}
