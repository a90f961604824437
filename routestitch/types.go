package routestitch

import "github.com/pcbroute/autoroute/highdensityrouting"

// Config tunes join tolerance and gap reporting.
type Config struct {
	// DuplicateTolerance is the distance below which a join point is
	// treated as a duplicate of the running endpoint and dropped.
	DuplicateTolerance float64

	// GapWarningThreshold is the distance above which a join is reported
	// as a Warning instead of silently accepted.
	GapWarningThreshold float64
}

// DefaultConfig returns the defaults used when a caller does not override
// a field.
func DefaultConfig() Config {
	return Config{DuplicateTolerance: 0.01, GapWarningThreshold: 0.5}
}

// Sequence is one connection's node order, as recorded by whichever
// stage produced it (unravel's order is preferred per spec.md §4.10
// since it alone records revisits).
type Sequence struct {
	ConnectionName string
	RootName       string
	NodeSequence   []string
}

// Route is one connection's stitched, still-unsimplified route.
type Route struct {
	ConnectionName string
	RootName       string
	Points         []highdensityrouting.Point3
	Jumpers        []highdensityrouting.Jumper
}

// Warning flags a join wider than Config.GapWarningThreshold. It never
// aborts the stitch.
type Warning struct {
	ConnectionName string
	NodeA, NodeB   string
	Gap            float64
}
