package searcher

import (
	"math"

	"github.com/edomerli/Gomoku/game"
)

// ucb1 scores a child from its parent's perspective.
func ucb1(wins float64, visits int, c float64, lnParent float64) float64 {
	if visits == 0 {
		panic("cannot compute UCB1: 0 visits")
	}
	return wins/float64(visits) + c*math.Sqrt(2*lnParent/float64(visits))
}

// bestChild scans n's children in insertion order and keeps the strictly
// greatest score, so ties keep the earliest child. With c == 0 it also
// returns every action's score, used for diagnostics at the root. ok is
// false when no child beats the score floor: every reply is then proven
// lost for n's mover and n is marked minimax-solved on the spot.
func bestChild(n *node, c float64) (best *node, action game.Action, scores map[game.Action]float64, ok bool) {
	lnParent := math.Log(float64(n.visits))
	if c == 0 {
		scores = make(map[game.Action]float64, len(n.children))
	}
	bestScore := scoreFloor
	for _, e := range n.children {
		score := ucb1(e.child.wins, e.child.visits, c, lnParent)
		if score > bestScore {
			bestScore = score
			best = e.child
			action = e.action
		}
		if c == 0 {
			scores[e.action] = score
		}
	}
	if best == nil {
		n.markUnwinnable()
		return nil, nil, scores, false
	}
	return best, action, scores, true
}
