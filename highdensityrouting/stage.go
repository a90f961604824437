package highdensityrouting

import (
	"github.com/pcbroute/autoroute/cache"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Stage runs Build once over the mesh's current port-point assignments.
type Stage struct {
	g     *meshgraph.Graph
	cfg   Config
	cache cache.Cache

	results []NodeResult
	done    bool
	err     error
	stats   stage.Stats
}

// NewStage returns a Stage that will build per-node polylines, vias and
// jumpers over g using cfg. c may be nil to disable intra-node solver
// caching entirely.
func NewStage(g *meshgraph.Graph, cfg Config, c cache.Cache) *Stage {
	return &Stage{g: g, cfg: cfg, cache: c}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "HighDensityRouting" }

// Step builds every node's routing.
func (s *Stage) Step() error {
	if s.done {
		return nil
	}
	results, err := Build(s.g, s.cfg, s.cache)
	s.done = true
	s.stats.Iterations++
	if err != nil {
		s.err = err

		return nil
	}
	s.results = results

	failed := 0
	jumpers := 0
	for _, r := range results {
		if r.Failed {
			failed++
		}
		jumpers += len(r.Jumpers)
	}
	s.stats.AddExtra("nodes_routed", float64(len(results)))
	s.stats.AddExtra("nodes_failed", float64(failed))
	s.stats.AddExtra("jumpers_inserted", float64(jumpers))

	return nil
}

// Solved reports whether Build has run and every node stayed within its
// jumper footprint budget.
func (s *Stage) Solved() bool {
	if !s.done || s.err != nil {
		return false
	}
	for _, r := range s.results {
		if r.Failed {
			return false
		}
	}

	return true
}

// Failed reports whether Build hit an internal invariant violation or left
// a node over its jumper footprint budget.
func (s *Stage) Failed() bool {
	if s.err != nil {
		return true
	}
	if !s.done {
		return false
	}
	for _, r := range s.results {
		if r.Failed {
			return true
		}
	}

	return false
}

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

// Results returns the per-node routing, valid once Step has run.
func (s *Stage) Results() []NodeResult { return s.results }
