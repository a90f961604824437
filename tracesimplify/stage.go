package tracesimplify

import (
	"github.com/pcbroute/autoroute/routestitch"
	"github.com/pcbroute/autoroute/stage"
)

// Stage runs Simplify once over every stitched route.
type Stage struct {
	routes []routestitch.Route
	cfg    Config

	simplified []routestitch.Route
	done       bool
	stats      stage.Stats
}

// NewStage returns a Stage that will simplify every route in routes.
func NewStage(routes []routestitch.Route, cfg Config) *Stage {
	return &Stage{routes: routes, cfg: cfg}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "TraceSimplify" }

// Step simplifies every route.
func (s *Stage) Step() error {
	if s.done {
		return nil
	}
	out := make([]routestitch.Route, len(s.routes))
	pointsBefore, pointsAfter := 0, 0
	for i, r := range s.routes {
		pointsBefore += len(r.Points)
		out[i] = Simplify(r, s.cfg)
		pointsAfter += len(out[i].Points)
	}
	s.simplified = out
	s.done = true
	s.stats.Iterations++
	s.stats.AddExtra("points_before", float64(pointsBefore))
	s.stats.AddExtra("points_after", float64(pointsAfter))

	return nil
}

// Solved reports whether Simplify has run.
func (s *Stage) Solved() bool { return s.done }

// Failed always reports false: simplification cannot fail.
func (s *Stage) Failed() bool { return false }

// Err always returns nil.
func (s *Stage) Err() error { return nil }

// Stats returns progress so far.
func (s *Stage) Stats() stage.Stats { return s.stats }

// Visualize is a no-op: tracesimplify has no graph of its own to render.
func (s *Stage) Visualize(v stage.Visualizer) {}

// Routes returns the simplified routes, valid once Solved reports true.
func (s *Stage) Routes() []routestitch.Route { return s.simplified }
