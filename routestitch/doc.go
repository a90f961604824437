// Package routestitch implements spec.md §4.10: for each connection, the
// per-node polylines produced by highdensityrouting are concatenated in
// the order given by the connection's node sequence (the same sequence
// capacitypathing or unravel already computed, so this package takes no
// dependency on either and instead accepts the sequence as a plain
// []string per connection).
//
// A node's polyline endpoints are oriented by nearest-endpoint match
// against the last stitched point rather than assumed pre-oriented,
// since highdensityrouting places entry and exit arbitrarily. Points
// within Config.DuplicateTolerance of the running endpoint are
// collapsed rather than duplicated. A join wider than
// Config.GapWarningThreshold is recorded as a Warning but never aborts
// the stitch, matching the teacher's preference for collecting
// soft-failure diagnostics over a pipeline instead of stopping it.
package routestitch
