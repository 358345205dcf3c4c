package searcher

import (
	"fmt"

	"github.com/edomerli/Gomoku/game"
)

type mockAction struct {
	id int
}

func (m mockAction) String() string {
	return fmt.Sprintf("a%d", m.id)
}

type mockState struct {
	player game.Player
	id     int
}

func (m mockState) Player() game.Player {
	return m.player
}

func (m mockState) Hash() game.StateHash {
	return game.StateHash(m.id)
}

func (m mockState) Clone() game.State {
	return m
}

// mockOracle scripts each rule query with a function; unset queries fall
// back to a quiet non-terminal game.
type mockOracle struct {
	legalFn  func(game.State) []game.Action
	overFn   func(game.State) (bool, error)
	winnerFn func(game.State) (game.Player, bool)
	applyFn  func(game.State, game.Action) game.State
	randomFn func(game.State) game.Action
}

func (o *mockOracle) LegalActions(s game.State) []game.Action {
	if o.legalFn == nil {
		return []game.Action{mockAction{id: 0}}
	}
	return o.legalFn(s)
}

func (o *mockOracle) IsOver(s game.State) (bool, error) {
	if o.overFn == nil {
		return false, nil
	}
	return o.overFn(s)
}

func (o *mockOracle) Winner(s game.State) (game.Player, bool) {
	if o.winnerFn == nil {
		return game.Black, false
	}
	return o.winnerFn(s)
}

func (o *mockOracle) Apply(s game.State, a game.Action) game.State {
	if o.applyFn == nil {
		return s
	}
	return o.applyFn(s, a)
}

func (o *mockOracle) RandomAction(s game.State) game.Action {
	if o.randomFn == nil {
		return mockAction{id: 0}
	}
	return o.randomFn(s)
}
