// Package unravel implements spec.md §4.8, PortPointPathing: the hardest
// single pipeline stage. It routes each connection as a concrete sequence
// of port-point crossings, searching the whole mesh from the connection's
// start node to its goal node (capacitypathing's node sequence is not an
// input), chosen to minimize the probability of downstream
// high-density-routing failure.
//
// The per-connection search generalizes capacitypathing's arena-indexed
// A* (itself grounded on the teacher's dijkstra package,
// github.com/katalvlaran/lvlath/dijkstra) one level down: candidates are
// (node, z, entry port) triples rather than bare node ids, and the cost
// model is a probability-of-failure accumulator instead of a congestion
// penalty. The multi-section rip-up/reroute optimizer mirrors
// capacitypathing's: each section round re-runs the search
// SeedsPerSection times, varying only the search seed; greediness,
// center-offset penalty and node-Pf weight keep their Config values for
// every attempt.
package unravel
