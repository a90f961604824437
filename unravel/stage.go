package unravel

import (
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Stage drives a Solver through its initial pass and section loop, one
// bounded unit of work per Step call.
type Stage struct {
	solver *Solver
	reqs   []Request

	routed    bool
	optimized bool

	stats stage.Stats
}

// NewStage returns a Stage that will route reqs over g using cfg.
func NewStage(g *meshgraph.Graph, reqs []Request, cfg Config) *Stage {
	return &Stage{solver: NewSolver(g, cfg), reqs: reqs}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "Unravel" }

// Step performs the initial per-connection pass on its first call, then
// one section round per subsequent call.
func (s *Stage) Step() error {
	if !s.routed {
		results := s.solver.RouteAll(s.reqs)
		s.routed = true
		s.stats.Iterations++
		failed := 0
		for _, r := range results {
			if r.Failed {
				failed++
			}
		}
		s.stats.ConnectionsProcessed = len(results)
		s.stats.ConnectionsFailed = failed
		s.stats.BoardScore = s.solver.BoardScore()

		return nil
	}
	if s.optimized {
		return nil
	}
	s.stats.Iterations++
	if !s.solver.OptimizeOnce() {
		s.optimized = true
	}
	s.stats.BoardScore = s.solver.BoardScore()

	return nil
}

// Solved reports whether both the initial pass and the section loop have
// finished.
func (s *Stage) Solved() bool { return s.routed && s.optimized }

// Failed always reports false: per-connection routing failures are a
// soft result (spec.md §7), never a fatal pipeline failure.
func (s *Stage) Failed() bool { return false }

// Err always returns nil.
func (s *Stage) Err() error { return nil }

// Stats returns progress so far.
func (s *Stage) Stats() stage.Stats { return s.stats }

// Visualize renders the underlying mesh graph.
func (s *Stage) Visualize(v stage.Visualizer) {
	if v != nil {
		v.Frame(s.Name(), s.solver.g)
	}
}

// Results returns the current per-connection port-point path results.
func (s *Stage) Results() []Result { return s.solver.Results() }
