package nettopointpairs

import (
	"fmt"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/stage"
)

// Stage decomposes board.Connections one net at a time, per stage.Stage's
// incremental contract.
type Stage struct {
	nets    []board.Connection
	cursor  int
	out     []board.Connection
	failed  bool
	err     error
	stats   stage.Stats
}

// NewStage returns a Stage ready to decompose nets.
func NewStage(nets []board.Connection) *Stage {
	return &Stage{nets: nets}
}

// Name implements stage.Named.
func (s *Stage) Name() string { return "NetToPointPairs" }

// Step decomposes the next pending net.
func (s *Stage) Step() error {
	if s.cursor >= len(s.nets) {
		return nil
	}
	conn := s.nets[s.cursor]
	pairs, err := DecomposeNet(conn)
	if err != nil {
		s.failed = true
		s.err = fmt.Errorf("nettopointpairs: %w", err)

		return s.err
	}
	s.out = append(s.out, pairs...)
	s.cursor++
	s.stats.Iterations++
	s.stats.ConnectionsProcessed++

	return nil
}

// Solved reports whether every net has been decomposed.
func (s *Stage) Solved() bool { return !s.failed && s.cursor >= len(s.nets) }

// Failed reports whether a net could not be decomposed (fatal per
// spec.md §4.1).
func (s *Stage) Failed() bool { return s.failed }

// Err returns the fatal decomposition error, if any.
func (s *Stage) Err() error { return s.err }

// Stats returns progress so far.
func (s *Stage) Stats() stage.Stats { return s.stats }

// Visualize is a no-op; this stage has no spatial state worth rendering.
func (s *Stage) Visualize(stage.Visualizer) {}

// PointPairs returns the decomposed connections once Solved.
func (s *Stage) PointPairs() []board.Connection { return s.out }
