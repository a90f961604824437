// Package tracesimplify implements spec.md §4.11: repeated passes of
// collinear-segment merging and redundant-via removal over a
// routestitch.Route. A via is redundant when its before and after
// segments sit on the same z — nothing downstream of it needed the
// layer change, so the via and the z it briefly visited collapse away.
//
// Simplify is idempotent past the configured pass count: once a pass
// produces no change, further passes are no-ops, so
// Simplify(Simplify(r)) == Simplify(r) for any r (spec.md §8 property 7).
package tracesimplify
