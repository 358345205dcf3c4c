package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edomerli/Gomoku/game"
)

func TestUCB1(t *testing.T) {
	t.Run("computes exploitation plus exploration", func(t *testing.T) {
		lnParent := math.Log(100)

		got := ucb1(5.0, 10, 1.0, lnParent)

		expected := 5.0/10 + math.Sqrt(2*lnParent/10)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute w/n + c*sqrt(2*ln(N)/n)")
	})

	t.Run("drops the exploration term at c=0", func(t *testing.T) {
		got := ucb1(5.0, 10, 0, math.Log(100))

		require.InDelta(t, 0.5, got, 0.0001, "Should be the plain win rate")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		require.Panics(t, func() {
			ucb1(5.0, 0, 1.0, math.Log(100))
		}, "Should panic when n is 0")
	})
}

func TestBestChild(t *testing.T) {
	t.Run("keeps the first child on a tie, for any c", func(t *testing.T) {
		first := &node{wins: 1, visits: 2}
		second := &node{wins: 1, visits: 2}
		n := &node{
			state:  mockState{player: game.Black},
			visits: 4,
			children: []edge{
				{action: mockAction{id: 1}, child: first},
				{action: mockAction{id: 2}, child: second},
			},
		}

		for _, c := range []float64{0, 1, 2.5} {
			best, action, _, ok := bestChild(n, c)

			require.True(t, ok)
			require.Same(t, first, best, "Tie should keep the earliest child")
			require.Equal(t, mockAction{id: 1}, action)
		}
	})

	t.Run("prefers the strictly greater score", func(t *testing.T) {
		weak := &node{wins: 0, visits: 2}
		strong := &node{wins: 2, visits: 2}
		n := &node{
			state:  mockState{player: game.Black},
			visits: 4,
			children: []edge{
				{action: mockAction{id: 1}, child: weak},
				{action: mockAction{id: 2}, child: strong},
			},
		}

		best, action, scores, ok := bestChild(n, 0)

		require.True(t, ok)
		require.Same(t, strong, best)
		require.Equal(t, mockAction{id: 2}, action)
		require.Len(t, scores, 2, "c=0 should report every action's score")
		require.InDelta(t, 0.0, scores[mockAction{id: 1}], 0.0001)
		require.InDelta(t, 1.0, scores[mockAction{id: 2}], 0.0001)
	})

	t.Run("returns no diagnostics when exploring", func(t *testing.T) {
		n := &node{
			state:  mockState{player: game.Black},
			visits: 2,
			children: []edge{
				{action: mockAction{id: 1}, child: &node{wins: 1, visits: 2}},
			},
		}

		_, _, scores, ok := bestChild(n, 1)

		require.True(t, ok)
		require.Nil(t, scores, "Score table is only built at c=0")
	})

	t.Run("declares minimax closure when every child is lost", func(t *testing.T) {
		parent := &node{state: mockState{player: game.White}, visits: 9}
		n := &node{
			state:  mockState{player: game.Black},
			parent: parent,
			visits: 4,
			children: []edge{
				{action: mockAction{id: 1}, child: &node{wins: math.Inf(-1), visits: 2}},
				{action: mockAction{id: 2}, child: &node{wins: math.Inf(-1), visits: 2}},
			},
		}

		best, _, _, ok := bestChild(n, 1)

		require.False(t, ok, "No child beats the floor")
		require.Nil(t, best)
		require.True(t, n.solved, "Node should be minimax-solved")
		require.Equal(t, game.White, n.winner,
			"Winner should be the opponent of the node's mover")
		require.Equal(t, math.Inf(1), n.wins)
		require.True(t, parent.solved, "Parent should be minimax-solved too")
		require.Equal(t, math.Inf(-1), parent.wins)
	})
}
