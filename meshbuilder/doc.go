// Package meshbuilder implements spec.md §4.2 MeshBuilder: it builds an
// adaptive quadtree of CapacityNode cells over the board rectangle,
// refining until no refinement rule fires, then emits the resulting leaves
// as the capacity mesh.
//
// The quadtree refinement loop is grounded on the teacher's
// gridgraph.ExpandIsland 0-1 BFS worklist style (github.com/katalvlaran/
// lvlath/gridgraph/expand.go): a FIFO worklist of candidate cells,
// repeatedly popped and either accepted as a leaf or split into four
// children pushed back onto the worklist, run to a fixpoint exactly as
// gridgraph runs its frontier to exhaustion.
package meshbuilder
