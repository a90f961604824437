// Package edgebuilder implements spec.md §4.3 EdgeBuilder: for every pair
// of leaf cells sharing a side with overlapping interval of positive
// length and non-empty mutual availableZ, it emits one CapacityEdge.
//
// Instead of the O(n²) all-pairs rect test, cells are grouped by their
// shared boundary coordinate (a coordinate-keyed map standing in for the
// sweep/interval-tree index spec.md calls for) and then matched by a
// two-pointer merge over sorted intervals — the same "sort, then
// linear-merge adjacent intervals" shape as the teacher's
// gridgraph.ExpandIsland sweep, generalized from a uniform grid to
// arbitrary quadtree leaf rectangles.
package edgebuilder
