package meshbuilder

// PortMargin is the clearance added to the minimum trace width when
// estimating how many parallel traces fit across a cell side.
const PortMargin = 0.1

// TunedTotalCapacity1 maps a cell's minimum side dimension to an integer
// capacity: how many parallel traces can simultaneously cross the cell,
// approximated as the side length divided by the trace pitch
// (minTraceWidth + PortMargin), floored and never below 1. This is the
// source system's getTunedTotalCapacity1, named identically in spec.md
// §4.2 and §4.8 so both MeshBuilder and Unravel's Pf model derive
// capacity the same way.
func TunedTotalCapacity1(minSideDimension, minTraceWidth float64) int {
	pitch := minTraceWidth + PortMargin
	if pitch <= 0 {
		return 1
	}
	cap := int(minSideDimension / pitch)
	if cap < 1 {
		cap = 1
	}

	return cap
}

// TunedDepth derives an initial quadtree depth D from the board's shorter
// span and a target minimum per-leaf capacity: the depth at which a
// uniformly-subdivided leaf's capacity would first fall at or below
// targetMinCapacity.
func TunedDepth(shorterSpan, minTraceWidth float64, targetMinCapacity int) int {
	if targetMinCapacity < 1 {
		targetMinCapacity = 1
	}
	depth := 0
	side := shorterSpan
	for depth < 16 && TunedTotalCapacity1(side, minTraceWidth) > targetMinCapacity {
		side /= 2
		depth++
	}

	return depth
}
