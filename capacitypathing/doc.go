// Package capacitypathing implements spec.md §4.5 CapacityPathing: for
// each point-pair connection, a node-level A* search over the capacity
// mesh respecting per-node capacity, followed by a multi-section
// optimizer that rips up and re-routes the most congested regions.
//
// The A* search itself generalizes the teacher's dijkstra package
// (github.com/katalvlaran/lvlath/dijkstra): the same lazy-decrease-key
// container/heap priority queue and runner-struct shape, extended with an
// admissible straight-line heuristic (making this A* rather than
// Dijkstra) and a congestion cost term. Per spec.md §9's design note, the
// search does not thread *candidate back-pointers directly: it keeps a
// flat arena of candidate records addressed by 32-bit index, so a path is
// reconstructed by walking parent indices rather than following pointers.
package capacitypathing
