package edgebuilder

import (
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Stage runs Build once. See meshbuilder.Stage for why a single-shot
// algorithm is still modeled as a (trivial) Stage.
type Stage struct {
	g      *meshgraph.Graph
	done   bool
	failed bool
	err    error
	stats  stage.Stats
}

// NewStage returns a Stage that will add edges to g.
func NewStage(g *meshgraph.Graph) *Stage { return &Stage{g: g} }

// Name implements stage.Named.
func (s *Stage) Name() string { return "EdgeBuilder" }

// Step derives every capacity edge.
func (s *Stage) Step() error {
	if s.done || s.failed {
		return nil
	}
	if err := Build(s.g); err != nil {
		s.failed = true
		s.err = err

		return err
	}
	s.done = true
	s.stats.Iterations++
	s.stats.AddExtra("edges", float64(len(s.g.EdgeIDs())))

	return nil
}

// Solved reports whether edges have been built.
func (s *Stage) Solved() bool { return s.done }

// Failed reports a fatal edge-construction error.
func (s *Stage) Failed() bool { return s.failed }

// Err returns the fatal error, if any.
func (s *Stage) Err() error { return s.err }

// Stats returns progress so far.
func (s *Stage) Stats() stage.Stats { return s.stats }

// Visualize renders the mesh graph with its edges.
func (s *Stage) Visualize(v stage.Visualizer) {
	if v != nil {
		v.Frame(s.Name(), s.g)
	}
}
