package segmenttopoint

import "errors"

// ErrSegmentOverflow indicates N*s > L for some edge: its crossing count
// cannot be spaced at the minimum pitch within the segment's length.
var ErrSegmentOverflow = errors.New("segmenttopoint: crossing count exceeds segment capacity at minimum spacing")

// ErrNoAvailableLayer indicates an edge's MutualZ set is empty, so no z
// can be chosen for any of its port points.
var ErrNoAvailableLayer = errors.New("segmenttopoint: edge has no mutual available layer")
