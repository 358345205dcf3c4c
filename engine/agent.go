package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/edomerli/Gomoku/experiments/metrics"
	"github.com/edomerli/Gomoku/game"
	"github.com/edomerli/Gomoku/searcher"
)

// Agent picks a move for the state it is handed.
type Agent interface {
	FindMove(state game.State) (game.Action, metrics.SearchMetric, error)
}

// SearchAgent plays the moves an MCTS engine finds.
type SearchAgent struct {
	search    *searcher.Engine
	collector metrics.Collector
}

func NewSearchAgent(search *searcher.Engine, collector metrics.Collector) *SearchAgent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &SearchAgent{search: search, collector: collector}
}

func (a *SearchAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	action, winRates, err := a.search.ChooseMove(state)
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("search failed: %w", err)
	}
	log.Debug().Msgf("%s picked %s (win rate %.3f over %d root moves)",
		state.Player(), action, winRates[action], len(winRates))
	return action, a.collector.Complete(), nil
}

// NewGame discards search statistics carried over from the previous game.
func (a *SearchAgent) NewGame() {
	a.search.Cache().Reset()
}
