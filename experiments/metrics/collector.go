package metrics

import "time"

// SearchMetric describes one move decision.
type SearchMetric struct {
	Budget          int
	Duration        time.Duration
	Iterations      int
	FullPlayouts    int
	SolvedShortcuts int
	TreeReused      bool
}

// MoveMetric ties a search metric to its place in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// Collector accumulates search statistics for one decision at a time.
// Searches are single-threaded, so plain counters suffice.
type Collector interface {
	Start(budget int)
	AddIteration()
	AddFullPlayout()
	AddSolvedShortcut()
	SetTreeReused(value bool)
	Complete() SearchMetric
}

type collector struct {
	budget          int
	startTime       time.Time
	iterations      int
	fullPlayouts    int
	solvedShortcuts int
	treeReused      bool
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(budget int) {
	*c = collector{budget: budget, startTime: time.Now()}
}

func (c *collector) AddIteration() {
	c.iterations++
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts++
}

func (c *collector) AddSolvedShortcut() {
	c.solvedShortcuts++
}

func (c *collector) SetTreeReused(value bool) {
	c.treeReused = value
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Budget:          c.budget,
		Duration:        time.Since(c.startTime),
		Iterations:      c.iterations,
		FullPlayouts:    c.fullPlayouts,
		SolvedShortcuts: c.solvedShortcuts,
		TreeReused:      c.treeReused,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for callers
// that do not measure their searches.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int)              {}
func (dummyCollector) AddIteration()          {}
func (dummyCollector) AddFullPlayout()        {}
func (dummyCollector) AddSolvedShortcut()     {}
func (dummyCollector) SetTreeReused(bool)     {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
