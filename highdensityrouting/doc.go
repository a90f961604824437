// Package highdensityrouting implements spec.md §4.9: for every mesh node
// with at least one assigned port-point pair, it produces one polyline per
// connection from its entry port to its exit port, inserting a via where a
// connection changes z within the node. Same-layer chords that
// geometrically cross (the same crossing condition unravel's Pf model
// uses to price them) cannot share a bare wire layer, so every chord that
// crosses an already-placed same-layer chord at a given node is rendered
// as a jumper instead, bounded by the node's footprint area.
//
// The polyline solver is intentionally simple — straight entry-to-exit
// segments, since a node rectangle is convex and both endpoints already
// lie on its boundary, containment is automatic without a dedicated
// clearance search. This generalizes the teacher's builder package
// (github.com/katalvlaran/lvlath/builder) in spirit: a small, explicit,
// options-free construction pass over already-validated inputs rather
// than a general-purpose routing search.
package highdensityrouting
