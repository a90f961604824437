package meshbuilder

import "errors"

// ErrNoLeaves indicates quadtree refinement produced zero capacity nodes,
// which can only happen for a degenerate board (caught earlier by
// board.Validate, but guarded defensively here too).
var ErrNoLeaves = errors.New("meshbuilder: quadtree produced no capacity nodes")
