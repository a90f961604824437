package routestitch

import "errors"

// ErrMissingNodePolyline indicates a connection's node sequence names a
// node that highdensityrouting never produced a polyline for — an
// internal invariant violation (spec.md §7), since every node in a
// connection's sequence was, by construction, assigned two port points
// for that connection.
var ErrMissingNodePolyline = errors.New("routestitch: no polyline for connection at node")
