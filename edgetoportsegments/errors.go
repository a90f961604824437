package edgetoportsegments

import "errors"

// ErrNoEdgeBetweenNodes indicates a connection's node sequence names two
// consecutive nodes with no CapacityEdge between them, an internal
// invariant violation (spec.md §7) since CapacityPathing only ever
// returns adjacency-respecting sequences.
var ErrNoEdgeBetweenNodes = errors.New("edgetoportsegments: no capacity edge between consecutive node-sequence entries")
