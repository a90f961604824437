package highdensityrouting

import "github.com/pcbroute/autoroute/board"

// Config tunes via placement and the jumper footprint budget.
type Config struct {
	// ViaDiameter is the minimum via diameter d_v.
	ViaDiameter float64

	// ViaMargin is added to d_v/2 when clamping a via's location inside a
	// node's bounds.
	ViaMargin float64

	// JumperFootprint is the area one jumper insertion consumes of a
	// node's footprint.
	JumperFootprint float64
}

// DefaultConfig returns the defaults used when a caller does not override
// a field.
func DefaultConfig(viaDiameter float64) Config {
	return Config{ViaDiameter: viaDiameter, ViaMargin: 0.1, JumperFootprint: 0.25}
}

// Point3 is a board-space point pinned to one layer.
type Point3 struct {
	X, Y float64
	Z    int
}

// Jumper is a same-layer crossing resolved by bridging over the
// conflicting chord instead of sharing its layer.
type Jumper struct {
	ConnectionName string
	Start, End     board.Point
	Z              int
}

// Polyline is one connection's route through a single node, entry to
// exit, with a via wherever Points changes Z.
type Polyline struct {
	ConnectionName string
	Points         []Point3
}

// NodeResult is the routing produced for one mesh node.
type NodeResult struct {
	NodeID    string
	Polylines []Polyline
	Jumpers   []Jumper
	Failed    bool // jumper footprint budget exceeded
}
