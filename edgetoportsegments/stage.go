package edgetoportsegments

import (
	"github.com/pcbroute/autoroute/capacitypathing"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Stage runs Build once.
type Stage struct {
	g       *meshgraph.Graph
	results []capacitypathing.Result

	byEdge map[string][]Crossing
	done   bool
	err    error
	stats  stage.Stats
}

// NewStage returns a Stage that will compute per-edge crossing lists from
// results over g.
func NewStage(g *meshgraph.Graph, results []capacitypathing.Result) *Stage {
	return &Stage{g: g, results: results}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "EdgeToPortSegments" }

// Step computes every edge's ordered crossing list.
func (s *Stage) Step() error {
	if s.done {
		return nil
	}
	byEdge, err := Build(s.g, s.results)
	s.done = true
	s.stats.Iterations++
	if err != nil {
		s.err = err

		return nil
	}
	s.byEdge = byEdge
	s.stats.AddExtra("edges_with_crossings", float64(len(byEdge)))

	return nil
}

// Solved reports whether Build has run.
func (s *Stage) Solved() bool { return s.done && s.err == nil }

// Failed reports whether Build hit an internal invariant violation.
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

// Crossings returns the per-edge ordered crossing lists, valid once
// Solved reports true.
func (s *Stage) Crossings() map[string][]Crossing { return s.byEdge }
