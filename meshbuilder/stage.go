package meshbuilder

import (
	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Stage runs Build once its single Step is called; the quadtree
// construction itself is not usefully decomposable into smaller
// externally-visible increments, so this stage reports Solved immediately
// after its one Step, matching spec.md §5's allowance that "any step()
// may return without completing" without requiring every stage to be
// multi-step.
type Stage struct {
	b       board.Board
	cfg     Config
	out     *meshgraph.Graph
	done    bool
	failed  bool
	err     error
	stats   stage.Stats
}

// NewStage returns a Stage ready to build the mesh for b.
func NewStage(b board.Board, cfg Config) *Stage {
	return &Stage{b: b, cfg: cfg}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "MeshBuilder" }

// Step builds the full quadtree mesh.
func (s *Stage) Step() error {
	if s.done || s.failed {
		return nil
	}
	g, err := Build(s.b, s.cfg)
	if err != nil {
		s.failed = true
		s.err = err

		return err
	}
	s.out = g
	s.done = true
	s.stats.Iterations++
	s.stats.AddExtra("nodes", float64(g.NodeCount()))

	return nil
}

// Solved reports whether the mesh has been built.
func (s *Stage) Solved() bool { return s.done }

// Failed reports whether mesh construction failed fatally.
func (s *Stage) Failed() bool { return s.failed }

// Err returns the fatal error, if any.
func (s *Stage) Err() error { return s.err }

// Stats returns progress so far.
func (s *Stage) Stats() stage.Stats { return s.stats }

// Visualize renders the current mesh graph, once built.
func (s *Stage) Visualize(v stage.Visualizer) {
	if v != nil && s.out != nil {
		v.Frame(s.Name(), s.out)
	}
}

// Mesh returns the built graph once Solved.
func (s *Stage) Mesh() *meshgraph.Graph { return s.out }
