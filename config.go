package autoroute

import (
	"github.com/pcbroute/autoroute/cache"
	"github.com/pcbroute/autoroute/capacitypathing"
	"github.com/pcbroute/autoroute/highdensityrouting"
	"github.com/pcbroute/autoroute/meshbuilder"
	"github.com/pcbroute/autoroute/routestitch"
	"github.com/pcbroute/autoroute/segmenttopoint"
	"github.com/pcbroute/autoroute/tracesimplify"
	"github.com/pcbroute/autoroute/unravel"
)

// Config aggregates every per-stage configuration, matching spec.md §6:
// "capacityDepth? (auto-derived...), targetMinCapacity, cacheProvider".
type Config struct {
	// TargetMinCapacity drives MeshBuilder's auto-derived CapacityDepth
	// when Mesh.CapacityDepth is left zero.
	TargetMinCapacity int

	// MinAllowedBoardScore gates the final result per spec.md §7: a
	// summed failure cost above this threshold causes Route to return
	// ErrBoardScoreTooLow alongside the (still-populated) Report. Zero
	// disables the gate.
	MinAllowedBoardScore float64

	// MaxStepsPerStage bounds each stage.Driver.Run call.
	MaxStepsPerStage int

	Mesh              meshbuilder.Config
	CapacityPathing   capacitypathing.Config
	Unravel           unravel.Config
	HighDensityRouting highdensityrouting.Config
	SegmentToPoint    segmenttopoint.Config
	RouteStitch       routestitch.Config
	TraceSimplify     tracesimplify.Config

	// Cache is consulted by intra-node solving stages; nil disables
	// caching entirely (spec.md §5: "the cache is purely an
	// optimization; correctness must hold with no cache").
	Cache cache.Cache
}

// DefaultConfig returns the defaults used when a caller does not override
// a field. minTraceWidth and viaDiameter come from the Board being routed
// since several stage configs derive from them.
func DefaultConfig(minTraceWidth, viaDiameter float64) Config {
	return Config{
		TargetMinCapacity:   4,
		MinAllowedBoardScore: 0,
		MaxStepsPerStage:    0,
		Mesh:                meshbuilder.DefaultConfig(),
		CapacityPathing:     capacitypathing.DefaultConfig(),
		Unravel:             unravel.DefaultConfig(),
		HighDensityRouting:  highdensityrouting.DefaultConfig(viaDiameter),
		SegmentToPoint:      segmenttopoint.DefaultConfig(minTraceWidth),
		RouteStitch:         routestitch.DefaultConfig(),
		TraceSimplify:       tracesimplify.DefaultConfig(),
	}
}
