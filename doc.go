// Package autoroute is a printed-circuit-board autorouter core: it turns
// a netlist of required point-to-point connections on a bounded, layered
// board with obstacles into a set of non-crossing, manufacturable copper
// traces, using vias to change layers.
//
// 🚀 What is autoroute?
//
//	A deterministic, dependency-light pipeline that brings together:
//
//	  • An adaptive quadtree capacity mesh over the board
//	  • A congestion-aware A* for coarse node-level pathing
//	  • A probability-of-failure A* for fine port-level pathing
//	  • Intra-node via/jumper placement and route stitching/simplification
//
// ✨ Why choose autoroute?
//
//   - Incremental     — every stage is a Step()-driven state machine
//   - Deterministic   — per-instance PRNGs, never a process-wide source
//   - Observable      — optional terminal visualization of mesh congestion
//   - Cache-optional  — an external cache only ever speeds up intra-node
//     solving; correctness holds with none configured
//
// Under the hood, the pipeline is organized as one package per stage:
//
//	board/              — the routing problem: bounds, layers, obstacles, nets
//	meshbuilder/        — adaptive quadtree capacity mesh construction
//	edgebuilder/        — shared-boundary adjacency between mesh nodes
//	deadendprune/       — removal of capacity-dead leaves
//	capacitypathing/    — congestion-penalty A* at node granularity
//	edgetoportsegments/ — per-edge crossing ordering
//	segmenttopoint/     — discrete port-point placement along edges
//	unravel/            — probability-of-failure A* at port-point granularity
//	highdensityrouting/ — intra-node polylines, vias and jumpers
//	routestitch/        — per-connection node-to-node route assembly
//	tracesimplify/      — collinear merge and redundant-via removal
//
// Route (route.go) drives all eleven stages in order through a
// stage.Driver and returns the simplified per-connection traces alongside
// a per-stage Report.
package autoroute
