package searcher

import (
	"github.com/rs/zerolog/log"

	"github.com/edomerli/Gomoku/game"
)

// Cache carries the subtree under the previously chosen move from one
// decision to the next, so its statistics seed the following search instead
// of being discarded. It is a single slot overwritten by every decision and
// must not be shared by concurrent searches.
type Cache struct {
	saved *node
}

func NewCache() *Cache {
	return &Cache{}
}

// Reset discards the retained subtree. Call it between independent games:
// statistics carried over from another game would corrupt the UCB estimates.
func (c *Cache) Reset() {
	c.saved = nil
}

// promote returns the retained child matching state, detached as a new root
// with its statistics intact, or nil when the realized position was never
// explored.
func (c *Cache) promote(state game.State) *node {
	if c.saved == nil {
		return nil
	}
	saved := c.saved
	c.saved = nil

	target := state.Hash()
	for _, e := range saved.children {
		if e.child.state.Hash() == target {
			e.child.parent = nil
			return e.child
		}
	}
	log.Debug().Msgf("state %d not in retained subtree: starting fresh", target)
	return nil
}

// retain stores the subtree rooted at the chosen move's node.
func (c *Cache) retain(best *node) {
	best.parent = nil
	c.saved = best
}
