package segmenttopoint

import (
	"github.com/pcbroute/autoroute/edgetoportsegments"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Stage runs Place once.
type Stage struct {
	g      *meshgraph.Graph
	byEdge map[string][]edgetoportsegments.Crossing
	cfg    Config

	overflows []Overflow
	done      bool
	err       error
	stats     stage.Stats
}

// NewStage returns a Stage that will place port points for byEdge over g
// using cfg.
func NewStage(g *meshgraph.Graph, byEdge map[string][]edgetoportsegments.Crossing, cfg Config) *Stage {
	return &Stage{g: g, byEdge: byEdge, cfg: cfg}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "SegmentToPoint" }

// Step places every edge's port points.
func (s *Stage) Step() error {
	if s.done {
		return nil
	}
	overflows, err := Place(s.g, s.byEdge, s.cfg)
	s.done = true
	s.stats.Iterations++
	if err != nil {
		s.err = err

		return nil
	}
	s.overflows = overflows
	s.stats.AddExtra("overflowed_edges", float64(len(overflows)))

	return nil
}

// Solved reports whether Place has run without a fatal error.
func (s *Stage) Solved() bool { return s.done && s.err == nil }

// Failed reports whether Place hit an internal invariant violation
// (ErrNoAvailableLayer). Per-edge overflow is a soft failure, not this.
func (s *Stage) Failed() bool { return s.err != nil }

// Err returns the fatal error, if any.
func (s *Stage) Err() error { return s.err }

// Stats returns progress so far.
func (s *Stage) Stats() stage.Stats { return s.stats }

// Visualize renders the underlying mesh graph.
func (s *Stage) Visualize(v stage.Visualizer) {
	if v != nil {
		v.Frame(s.Name(), s.g)
	}
}

// Overflows returns the edges that could not fit their crossing count at
// minimum spacing.
func (s *Stage) Overflows() []Overflow { return s.overflows }
