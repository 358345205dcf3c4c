package searcher

import "errors"

var (
	// ErrNoLegalActions reports a non-terminal state with an empty legal
	// action list. A correct oracle never produces one.
	ErrNoLegalActions = errors.New("no legal actions for non-terminal state")

	// ErrNoChildren reports a search that exhausted its budget without
	// expanding a single root child, e.g. a budget of zero.
	ErrNoChildren = errors.New("search produced no root children")
)
