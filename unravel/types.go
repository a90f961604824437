package unravel

import "github.com/pcbroute/autoroute/board"

// Config tunes the per-connection port-point A* and the section loop.
type Config struct {
	// Greedy weights the heuristic term in f = g + Greedy*h. Higher values
	// bias the search toward goal-directed speed over Pf-optimality.
	Greedy float64

	// CenterOffsetPenalty scales an extra cost term proportional to a
	// port point's DCentermost, discouraging crowding at a segment's
	// extremes.
	CenterOffsetPenalty float64

	// NodePfFactor scales the memory-of-historically-bad-nodes term added
	// to the heuristic.
	NodePfFactor float64

	// IterationsPerUnitLength sets MAX_ITERATIONS_PER_PATH = straightLine *
	// IterationsPerUnitLength + 16 for a single connection's search.
	IterationsPerUnitLength float64

	// ExpansionDegrees bounds the BFS hop radius used when extracting a
	// subgraph around the highest-Pf node for re-optimization.
	ExpansionDegrees int

	// RipFraction is the fraction (0,1] of a section's touching
	// connections ripped up and re-routed per attempt.
	RipFraction float64

	// MaxSectionAttempts bounds how many rip-up/re-route rounds the
	// section loop will run before giving up.
	MaxSectionAttempts int

	// SeedsPerSection is how many re-routing attempts, each with a
	// different search seed, are tried per section re-optimization round;
	// the other Config values are the same for every attempt.
	SeedsPerSection int

	// AcceptablePf is the per-node Pf ceiling below which the section loop
	// considers the board converged.
	AcceptablePf float64

	// ShuffleSeed seeds the per-instance PRNG from which every search's
	// tie-break seed is drawn, for deterministic reruns.
	ShuffleSeed uint32
}

// DefaultConfig returns the defaults used when a caller does not override
// a field.
func DefaultConfig() Config {
	return Config{
		Greedy:                  1.0,
		CenterOffsetPenalty:     0.05,
		NodePfFactor:            0.5,
		IterationsPerUnitLength: 25,
		ExpansionDegrees:        2,
		RipFraction:             0.3,
		MaxSectionAttempts:      10,
		SeedsPerSection:         4,
		AcceptablePf:            0.05,
		ShuffleSeed:             1,
	}
}

// Request is one connection to be routed at port-point granularity.
type Request struct {
	ConnectionName string
	RootName       string
	StartNodeID    string
	GoalNodeID     string
	StartPoint     board.Point // the connection's true terminal inside StartNodeID
	GoalPoint      board.Point // the connection's true terminal inside GoalNodeID
	StraightLine   float64
}

// Result is the port-point-level path found (or not) for one Request. A
// successful result's NodeSequence starts at StartNodeID and ends at
// GoalNodeID; PortSequence[i] is the port point crossed between
// NodeSequence[i] and NodeSequence[i+1], so len(PortSequence) ==
// len(NodeSequence)-1.
type Result struct {
	ConnectionName string
	RootName       string
	NodeSequence   []string
	PortSequence   []string // PortSequence[i] is crossed leaving NodeSequence[i]
	Cost           float64
	Failed         bool
}
