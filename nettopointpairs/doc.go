// Package nettopointpairs implements spec.md §4.1 NetToPointPairs: it
// decomposes each multi-point net into k-1 two-point sub-connections along
// a Euclidean minimum spanning tree over the net's endpoints.
//
// The MST itself is Prim's algorithm in O(k²) over a dense distance
// matrix, grounded on the teacher's tsp/mst.go (github.com/katalvlaran/
// lvlath/tsp), generalized from a matrix.Matrix input to raw (x,y) points
// and from "total weight + adjacency" output to named board.Connection
// pairs whose RootName threads back to the original net.
package nettopointpairs
