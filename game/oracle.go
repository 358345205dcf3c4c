package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

// ErrInvalidState reports a state the rules cannot classify as terminal or
// non-terminal. A search cannot proceed past it.
var ErrInvalidState = errors.New("state cannot be classified")

// Oracle is the narrow rules interface a searcher depends on. Any game that
// wants to be playable by the MCTS agent implements it.
type Oracle interface {
	// LegalActions returns the legal actions of s in a fixed, reproducible
	// order.
	LegalActions(s State) []Action
	// IsOver reports whether s is terminal. It fails with ErrInvalidState
	// when s cannot be classified.
	IsOver(s State) (bool, error)
	// Winner returns the winning player of s, if there is one.
	Winner(s State) (Player, bool)
	// Apply returns the successor of s after playing a legal action. It
	// never mutates s.
	Apply(s State, a Action) State
	// RandomAction returns a uniformly sampled legal action of s.
	RandomAction(s State) Action
}

// Gomoku implements Oracle for connect-in-a-row on a square board.
type Gomoku struct {
	rules Rules
	rng   *rand.Rand
}

// NewGomoku creates an oracle for a size x size board where winLength in a
// row wins. The seed fixes the rollout sampling sequence.
func NewGomoku(size, winLength int, seed uint64) *Gomoku {
	return &Gomoku{
		rules: NewRules(size, winLength),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// NewGame returns the empty starting position, Black to move.
func (g *Gomoku) NewGame() *Position {
	return NewPosition(g.rules.size)
}

func (g *Gomoku) LegalActions(s State) []Action {
	return g.rules.legalActions(g.position(s).board)
}

func (g *Gomoku) IsOver(s State) (bool, error) {
	p, ok := s.(*Position)
	if !ok {
		return false, fmt.Errorf("%w: %T is not a gomoku position", ErrInvalidState, s)
	}
	if p.board.Size() != g.rules.size {
		return false, fmt.Errorf("%w: board size %d, rules expect %d",
			ErrInvalidState, p.board.Size(), g.rules.size)
	}
	return g.rules.over(p.board), nil
}

func (g *Gomoku) Winner(s State) (Player, bool) {
	return g.rules.winner(g.position(s).board)
}

func (g *Gomoku) Apply(s State, a Action) State {
	pt, ok := a.(Point)
	if !ok {
		panic(fmt.Sprintf("action %v is not a gomoku point", a))
	}
	return g.position(s).play(pt)
}

func (g *Gomoku) RandomAction(s State) Action {
	actions := g.LegalActions(s)
	if len(actions) == 0 {
		panic("no legal actions to sample")
	}
	return actions[g.rng.Intn(len(actions))]
}

func (g *Gomoku) position(s State) *Position {
	p, ok := s.(*Position)
	if !ok {
		panic(fmt.Sprintf("state %T is not a gomoku position", s))
	}
	return p
}
