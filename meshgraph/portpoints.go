package meshgraph

// AddPortPoint inserts p onto its edge, assigning an id if p.ID is empty,
// and indexes it under both endpoint nodes.
func (g *Graph) AddPortPoint(p *PortPoint) error {
	if _, ok := g.edges[p.EdgeID]; !ok {
		return ErrEdgeNotFound
	}
	if p.ID == "" {
		g.nextPortID++
		p.ID = "p" + itoa(g.nextPortID)
	}
	g.portPoints[p.ID] = p
	g.edgePorts[p.EdgeID] = append(g.edgePorts[p.EdgeID], p.ID)
	g.nodePorts[p.NodeA] = append(g.nodePorts[p.NodeA], p.ID)
	g.nodePorts[p.NodeB] = append(g.nodePorts[p.NodeB], p.ID)

	return nil
}

// PortPoint returns the port point with the given id, or nil, false if
// absent.
func (g *Graph) PortPoint(id string) (*PortPoint, bool) {
	p, ok := g.portPoints[id]

	return p, ok
}

// PortPointsOnEdge returns the port point ids on edgeID in insertion order
// (EdgeToPortSegments controls that order to match downstream-node
// projection, per spec.md §4.6).
func (g *Graph) PortPointsOnEdge(edgeID string) []string {
	ids := g.edgePorts[edgeID]
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}

// PortPointsOnNode returns every port point id touching nodeID, across all
// of its incident edges.
func (g *Graph) PortPointsOnNode(nodeID string) []string {
	ids := g.nodePorts[nodeID]
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}

// Assign binds portID to the given Assignment. Returns ErrAlreadyAssigned
// if portID already carries an Assignment with a different RootNet
// (testable property 4: same-root reuse is allowed).
func (g *Graph) Assign(portID string, a Assignment) error {
	if existing, ok := g.assigned[portID]; ok && existing.RootNet != a.RootNet {
		return ErrAlreadyAssigned
	}
	g.assigned[portID] = a

	return nil
}

// Release removes any Assignment on portID. Used by the Unravel stage's
// release/reassign mutation (spec.md §3 Lifecycle).
func (g *Graph) Release(portID string) {
	delete(g.assigned, portID)
}

// AssignmentOf returns the Assignment bound to portID, if any.
func (g *Graph) AssignmentOf(portID string) (Assignment, bool) {
	a, ok := g.assigned[portID]

	return a, ok
}

// IsAssigned reports whether portID currently carries any Assignment.
func (g *Graph) IsAssigned(portID string) bool {
	_, ok := g.assigned[portID]

	return ok
}

// UnassignedOnEdge returns the subset of PortPointsOnEdge(edgeID) with no
// current Assignment.
func (g *Graph) UnassignedOnEdge(edgeID string) []string {
	var out []string
	for _, id := range g.edgePorts[edgeID] {
		if !g.IsAssigned(id) {
			out = append(out, id)
		}
	}

	return out
}
