package deadendprune

import (
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Stage runs Prune once.
type Stage struct {
	g      *meshgraph.Graph
	done   bool
	stats  stage.Stats
}

// NewStage returns a Stage that will prune g in place.
func NewStage(g *meshgraph.Graph) *Stage { return &Stage{g: g} }

// Name implements stage.Named.
func (s *Stage) Name() string { return "DeadEndPrune" }

// Step prunes every dead-end node to a fixpoint.
func (s *Stage) Step() error {
	if s.done {
		return nil
	}
	removed := Prune(s.g)
	s.done = true
	s.stats.Iterations++
	s.stats.AddExtra("removed", float64(removed))

	return nil
}

// Solved reports whether pruning has completed.
func (s *Stage) Solved() bool { return s.done }

// Failed always reports false: pruning cannot fail fatally.
func (s *Stage) Failed() bool { return false }

// Err always returns nil.
func (s *Stage) Err() error { return nil }

// Stats returns progress so far.
func (s *Stage) Stats() stage.Stats { return s.stats }

// Visualize renders the pruned mesh graph.
func (s *Stage) Visualize(v stage.Visualizer) {
	if v != nil {
		v.Frame(s.Name(), s.g)
	}
}
