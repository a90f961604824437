package meshbuilder

import "github.com/pcbroute/autoroute/board"

// Config tunes the quadtree refinement rules of spec.md §4.2.
type Config struct {
	// CapacityDepth is the initial quadtree depth. If zero, it is derived
	// from the board's span and TargetMinCapacity via TunedDepth, per
	// spec.md §6 ("capacityDepth? auto-derived from span and
	// targetMinCapacity if absent").
	CapacityDepth int

	// TargetMinCapacity is the minimum per-leaf capacity MeshBuilder aims
	// for when deriving CapacityDepth.
	TargetMinCapacity int

	// TargetCellSize bounds how small a cell touching a connection
	// endpoint or the board outline must become (refinement rules 2, 3).
	TargetCellSize float64

	// MaxDepth is a hard ceiling on recursive subdivision, preventing
	// runaway refinement against pathological obstacle geometry.
	MaxDepth int
}

// DefaultConfig returns sensible defaults: TargetMinCapacity=4,
// TargetCellSize derived lazily from the board at build time if left
// zero, MaxDepth=12.
func DefaultConfig() Config {
	return Config{
		TargetMinCapacity: 4,
		MaxDepth:          12,
	}
}

// target holds one connection endpoint's projection onto the mesh, used by
// refinement rule 2.
type target struct {
	pt      board.Point
	rootNet string
}

// cellTask is one pending quadtree cell awaiting an accept/split decision.
type cellTask struct {
	rect  board.Rect
	depth int
}
