package routestitch

import (
	"github.com/pcbroute/autoroute/highdensityrouting"
	"github.com/pcbroute/autoroute/stage"
)

// Stage runs Stitch once.
type Stage struct {
	nodeResults []highdensityrouting.NodeResult
	sequences   []Sequence
	cfg         Config

	routes   []Route
	warnings []Warning
	done     bool
	err      error
	stats    stage.Stats
}

// NewStage returns a Stage that will stitch nodeResults into one Route
// per sequence.
func NewStage(nodeResults []highdensityrouting.NodeResult, sequences []Sequence, cfg Config) *Stage {
	return &Stage{nodeResults: nodeResults, sequences: sequences, cfg: cfg}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "RouteStitch" }

// Step runs Stitch.
func (s *Stage) Step() error {
	if s.done {
		return nil
	}
	routes, warnings, err := Stitch(s.nodeResults, s.sequences, s.cfg)
	s.done = true
	s.stats.Iterations++
	if err != nil {
		s.err = err

		return nil
	}
	s.routes = routes
	s.warnings = warnings
	s.stats.AddExtra("routes_stitched", float64(len(routes)))
	s.stats.AddExtra("gap_warnings", float64(len(warnings)))

	return nil
}

// Solved reports whether Stitch has run.
func (s *Stage) Solved() bool { return s.done && s.err == nil }

// Failed reports whether Stitch hit an internal invariant violation.
func (s *Stage) Failed() bool { return s.err != nil }

// Err returns the fatal error, if any.
func (s *Stage) Err() error { return s.err }

// Stats returns progress so far.
func (s *Stage) Stats() stage.Stats { return s.stats }

// Visualize is a no-op: routestitch has no graph of its own to render.
func (s *Stage) Visualize(v stage.Visualizer) {}

// Routes returns the stitched routes, valid once Solved reports true.
func (s *Stage) Routes() []Route { return s.routes }

// Warnings returns the recorded gap warnings.
func (s *Stage) Warnings() []Warning { return s.warnings }
