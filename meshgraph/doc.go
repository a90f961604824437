// Package meshgraph defines the capacity mesh: CapacityNode (quadtree leaf
// cells), CapacityEdge (shared-boundary adjacencies between nodes) and
// PortPoint (discrete crossing slots on an edge), together with the Graph
// that owns them.
//
// Graph generalizes the teacher library's core.Graph from a generic
// vertex/edge graph to this domain's specific node/edge/port-point triple,
// per spec.md §3's ownership rule: "mesh nodes own their port points (by
// id); port points are referenced by capacity paths and by
// assigned-connection maps via id only, never by pointer identity."
//
// Graph is built once per pipeline run by MeshBuilder and EdgeBuilder and
// is never shared across goroutines (spec.md §5: "no shared mutable state
// across stages"), so unlike core.Graph it carries no locks.
package meshgraph
