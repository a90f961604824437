package segmenttopoint

import (
	"github.com/pcbroute/autoroute/edgetoportsegments"
	"github.com/pcbroute/autoroute/meshbuilder"
)

// Config tunes the minimum spacing between placed port points.
type Config struct {
	// MinTraceWidth is the board's minimum trace width w.
	MinTraceWidth float64

	// Margin is added to MinTraceWidth to form the minimum spacing s.
	// Defaults to meshbuilder.PortMargin, the same pitch clearance
	// MeshBuilder uses when deriving per-cell capacity, so a segment never
	// advertises more port points than its owning cells' capacity allows.
	Margin float64
}

// DefaultConfig returns a Config using the standard margin.
func DefaultConfig(minTraceWidth float64) Config {
	return Config{MinTraceWidth: minTraceWidth, Margin: meshbuilder.PortMargin}
}

// Spacing returns the minimum required spacing s = w + margin.
func (c Config) Spacing() float64 { return c.MinTraceWidth + c.Margin }

// Overflow records an edge whose crossing count could not be placed at
// the minimum spacing within its segment length (spec.md §4.7).
type Overflow struct {
	EdgeID    string
	Crossings []edgetoportsegments.Crossing
}
