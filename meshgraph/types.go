package meshgraph

import "github.com/pcbroute/autoroute/board"

// CapacityNode is a quadtree leaf cell: spec.md §3's "capacity node".
type CapacityNode struct {
	ID                string
	Rect              board.Rect
	AvailableZ        board.LayerSet
	ContainsTarget    bool
	ContainsObstacle  bool
	OffBoard          bool // reserved off-board entry node (spec.md §4.1)
	TargetRootNet     string
	Capacity          int // from getTunedTotalCapacity1
	UsedCapacity      int // incremented as CapacityPathing routes cross this node
}

// ResidualCapacity returns Capacity-UsedCapacity, which may go negative
// when MAX_CAPACITY_FACTOR > 1 permits overload.
func (n *CapacityNode) ResidualCapacity() int { return n.Capacity - n.UsedCapacity }

// CongestionRatio returns UsedCapacity/Capacity, or 1 if Capacity <= 0.
func (n *CapacityNode) CongestionRatio() float64 {
	if n.Capacity <= 0 {
		return 1
	}

	return float64(n.UsedCapacity) / float64(n.Capacity)
}

// CapacityEdge is an undirected adjacency between two CapacityNodes that
// share a rectangular boundary of positive length, per spec.md §3/§4.3.
type CapacityEdge struct {
	ID       string
	A, B     string
	Shared   board.SharedEdge
	MutualZ  board.LayerSet
}

// Other returns the endpoint of e that is not nodeID.
func (e *CapacityEdge) Other(nodeID string) string {
	if e.A == nodeID {
		return e.B
	}

	return e.A
}

// PortPoint is a discrete crossing slot on a CapacityEdge's shared
// boundary, per spec.md §3.
type PortPoint struct {
	ID            string
	X, Y          float64
	Z             int
	EdgeID        string
	NodeA, NodeB  string
	DCentermost   float64
}

// Point returns the port point's location.
func (p *PortPoint) Point() board.Point { return board.Point{X: p.X, Y: p.Y} }

// Assignment binds a PortPoint to exactly one connection, identified by its
// own name and the root net it belongs to. Two port points may carry
// Assignments with the same RootNet (they are part of the same electrical
// net) but a PortPoint itself may only ever carry one Assignment at a time.
type Assignment struct {
	ConnectionName string
	RootNet        string
}
