package capacitypathing

import (
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Stage drives a Solver through its greedy pass and then its multi-section
// optimizer, one bounded unit of work per Step call.
type Stage struct {
	solver *Solver
	reqs   []Request

	routed    bool
	optimized bool

	stats stage.Stats
}

// NewStage returns a Stage that will route reqs over g using cfg. cfg must
// already have passed Validate; NewStage does not re-check it.
func NewStage(g *meshgraph.Graph, reqs []Request, cfg Config) *Stage {
	return &Stage{
		solver: NewSolver(g, cfg),
		reqs:   reqs,
	}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "CapacityPathing" }

// Step performs the greedy pass on its first call, then one
// rip-up/reroute round per subsequent call until the optimizer reports no
// further improvement is worth attempting.
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

		return nil
	}
	if s.optimized {
		return nil
	}
	s.stats.Iterations++
	if !s.solver.OptimizeOnce() {
		s.optimized = true
	}

	return nil
}

// Solved reports whether both the greedy pass and the optimizer have
// finished.
func (s *Stage) Solved() bool { return s.routed && s.optimized }

// Failed always reports false: per-connection routing failures are a soft
// result (spec.md §7), never a fatal pipeline failure.
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

// Results returns the current per-connection node-level path results.
func (s *Stage) Results() []Result { return s.solver.Results() }
