package meshgraph

import "sort"

// Graph owns every CapacityNode, CapacityEdge and PortPoint produced by a
// pipeline run. All cross-structure references are ids (spec.md §3); Graph
// is the only place that resolves an id to its record.
type Graph struct {
	nodes map[string]*CapacityNode
	edges map[string]*CapacityEdge

	// adjacency[nodeID][neighborID] = edgeID
	adjacency map[string]map[string]string

	portPoints map[string]*PortPoint
	// nodePorts[nodeID] = port point ids touching that node (both sides).
	nodePorts map[string][]string
	// edgePorts[edgeID] = port point ids on that edge, in edge-insertion order.
	edgePorts map[string][]string

	assigned map[string]Assignment // portPointID -> Assignment

	nextEdgeID int
	nextPortID int
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:      make(map[string]*CapacityNode),
		edges:      make(map[string]*CapacityEdge),
		adjacency:  make(map[string]map[string]string),
		portPoints: make(map[string]*PortPoint),
		nodePorts:  make(map[string][]string),
		edgePorts:  make(map[string][]string),
		assigned:   make(map[string]Assignment),
	}
}

// AddNode inserts n. Returns ErrDuplicateNodeID if n.ID is already present.
func (g *Graph) AddNode(n *CapacityNode) error {
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n.ID] = n
	g.adjacency[n.ID] = make(map[string]string)

	return nil
}

// Node returns the node with the given id, or nil, false if absent.
func (g *Graph) Node(id string) (*CapacityNode, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// MustNode returns the node with the given id, panicking if absent. Used
// internally once an id is already known to have been validated.
func (g *Graph) MustNode(id string) *CapacityNode {
	n, ok := g.nodes[id]
	if !ok {
		panic("meshgraph: MustNode on unknown id " + id)
	}

	return n
}

// NodeIDs returns every node id in sorted order, for deterministic
// iteration.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// RemoveNode deletes a node and every edge and port point touching it.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for neighbor, edgeID := range g.adjacency[id] {
		g.removeEdgeByID(edgeID, id, neighbor)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)
}

// AddEdge inserts e and records the adjacency in both directions. Returns
// ErrSelfEdge or ErrNoMutualLayers, or ErrNodeNotFound if an endpoint is
// unknown.
func (g *Graph) AddEdge(e *CapacityEdge) error {
	if e.A == e.B {
		return ErrSelfEdge
	}
	if _, ok := g.nodes[e.A]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[e.B]; !ok {
		return ErrNodeNotFound
	}
	if e.MutualZ.Empty() {
		return ErrNoMutualLayers
	}
	if e.ID == "" {
		e.ID = g.nextEdgeIDString()
	}
	g.edges[e.ID] = e
	g.adjacency[e.A][e.B] = e.ID
	g.adjacency[e.B][e.A] = e.ID

	return nil
}

func (g *Graph) nextEdgeIDString() string {
	g.nextEdgeID++

	return "e" + itoa(g.nextEdgeID)
}

// Edge returns the edge with the given id, or nil, false if absent.
func (g *Graph) Edge(id string) (*CapacityEdge, bool) {
	e, ok := g.edges[id]

	return e, ok
}

// EdgeBetween returns the edge id connecting a and b, if any.
func (g *Graph) EdgeBetween(a, b string) (string, bool) {
	id, ok := g.adjacency[a][b]

	return id, ok
}

// EdgeIDs returns every edge id in sorted order.
func (g *Graph) EdgeIDs() []string {
	ids := make([]string, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the edges incident to nodeID, sorted by the neighbor's
// id for deterministic traversal order.
func (g *Graph) Neighbors(nodeID string) []*CapacityEdge {
	adj := g.adjacency[nodeID]
	neighborIDs := make([]string, 0, len(adj))
	for nb := range adj {
		neighborIDs = append(neighborIDs, nb)
	}
	sort.Strings(neighborIDs)

	out := make([]*CapacityEdge, 0, len(neighborIDs))
	for _, nb := range neighborIDs {
		out = append(out, g.edges[adj[nb]])
	}

	return out
}

// Degree returns the number of edges incident to nodeID.
func (g *Graph) Degree(nodeID string) int { return len(g.adjacency[nodeID]) }

func (g *Graph) removeEdgeByID(edgeID, a, b string) {
	delete(g.edges, edgeID)
	if adj, ok := g.adjacency[a]; ok {
		delete(adj, b)
	}
	if adj, ok := g.adjacency[b]; ok {
		delete(adj, a)
	}
	for _, pid := range g.edgePorts[edgeID] {
		delete(g.portPoints, pid)
		delete(g.assigned, pid)
	}
	delete(g.edgePorts, edgeID)
}

// RemoveEdge deletes the edge with the given id, along with its port
// points.
func (g *Graph) RemoveEdge(id string) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	g.removeEdgeByID(id, e.A, e.B)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[i:])
}
