// Package edgetoportsegments implements spec.md §4.6: for every capacity
// edge traversed by at least one connection (per CapacityPathing's
// node-sequence results), it builds the ordered list of crossings on that
// edge's shared boundary segment, one entry per (connection, edge)
// traversal. The ordering is the projection of each traversal's
// downstream node center onto the shared segment, matching spec.md's
// requirement that intra-edge order mirror physical approach order.
//
// This generalizes the teacher's bfs package's layer-by-layer traversal
// bookkeeping (github.com/katalvlaran/lvlath/bfs): the same single pass
// over a predetermined visiting order, grouping results by the edge each
// step crosses rather than by BFS layer.
package edgetoportsegments
