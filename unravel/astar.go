package unravel

import (
	"container/heap"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/rng"
)

// candidate is one arena-indexed search node: (nodeID, z, entryPortID),
// per spec.md §9's arena-of-records design note. entryPortID is "" at the
// path's start, where the connection's own terminal stands in for a port.
type candidate struct {
	parent      int32
	nodeID      string
	z           int
	entryPortID string
	g           float64
}

type searchItem struct {
	idx int32
	f   float64
}

type searchPQ []searchItem

func (pq searchPQ) Len() int            { return len(pq) }
func (pq searchPQ) Less(i, j int) bool   { return pq[i].f < pq[j].f }
func (pq searchPQ) Swap(i, j int)        { pq[i], pq[j] = pq[j], pq[i] }
func (pq *searchPQ) Push(x interface{})  { *pq = append(*pq, x.(searchItem)) }
func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// memory tracks a running per-node Pf estimate the heuristic consults to
// steer away from historically bad nodes ("memoryPf penalty" of spec.md
// §4.8), seeded from the node's current real Pf and refreshed by the
// section loop between rounds.
type memory map[string]float64

// Search runs one connection's port-point A* over g from req.StartNodeID
// to req.GoalNodeID. blocked, if non-nil, marks node ids the search may
// not enter other than req.GoalNodeID (used to confine a section
// re-optimization to its subgraph).
// seed drives the tie-break jitter, letting the multi-section optimizer
// retry a request with a different deterministic ordering.
func Search(g *meshgraph.Graph, req Request, cfg Config, mem memory, blocked map[string]bool, seed uint32) (Result, error) {
	if _, ok := g.Node(req.StartNodeID); !ok {
		return Result{}, ErrStartNodeNotFound
	}
	goalNode, ok := g.Node(req.GoalNodeID)
	if !ok {
		return Result{}, ErrGoalNodeNotFound
	}
	goalCenter := goalNode.Rect.Center()
	r := rng.New(seed)

	maxIterations := int(req.StraightLine*cfg.IterationsPerUnitLength) + 16

	arena := make([]candidate, 0, 64)
	push := func(parent int32, nodeID string, z int, entryPortID string, g float64) int32 {
		arena = append(arena, candidate{parent: parent, nodeID: nodeID, z: z, entryPortID: entryPortID, g: g})

		return int32(len(arena) - 1)
	}

	startNode := g.MustNode(req.StartNodeID)
	startZ, _ := startNode.AvailableZ.Lowest()
	startIdx := push(-1, req.StartNodeID, startZ, "", 0)

	pq := make(searchPQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, searchItem{idx: startIdx, f: heuristic(g, req.StartNodeID, goalCenter, cfg, mem, r)})

	iterations := 0
	for pq.Len() > 0 {
		iterations++
		if iterations > maxIterations {
			return Result{ConnectionName: req.ConnectionName, RootName: req.RootName, Failed: true}, ErrNoPath
		}
		it := heap.Pop(&pq).(searchItem)
		cur := arena[it.idx]

		if cur.nodeID == req.GoalNodeID {
			return reconstructResult(g, req, arena, it.idx, cur.g), nil
		}

		visited := chainVisited(arena, it.idx)
		usedPorts := chainUsedPorts(arena, it.idx)

		for _, pid := range g.PortPointsOnNode(cur.nodeID) {
			p, ok := g.PortPoint(pid)
			if !ok || g.IsAssigned(pid) || usedPorts[pid] {
				continue
			}
			if p.EdgeID == "" {
				continue
			}
			edge, ok := g.Edge(p.EdgeID)
			if !ok {
				continue
			}
			nextNode := edge.Other(cur.nodeID)
			if blocked != nil && blocked[nextNode] && nextNode != req.GoalNodeID {
				continue
			}
			if visited[nextNode] {
				continue
			}

			entryPoint := req.StartPoint
			entryZ := cur.z
			if cur.entryPortID != "" {
				if ep, ok := g.PortPoint(cur.entryPortID); ok {
					entryPoint = ep.Point()
					entryZ = ep.Z
				}
			}

			baseline := NodePf(g, cur.nodeID)
			withChord := pfWithExtraChord(g, cur.nodeID, entryPoint, entryZ, p.Point(), p.Z)
			delta := FailureCost(withChord) - FailureCost(baseline)
			if delta < 0 {
				delta = 0
			}
			delta += cfg.CenterOffsetPenalty * p.DCentermost

			newG := cur.g + delta
			idx := push(it.idx, nextNode, p.Z, pid, newG)
			f := newG + cfg.Greedy*heuristic(g, nextNode, goalCenter, cfg, mem, r)
			heap.Push(&pq, searchItem{idx: idx, f: f})
		}
	}

	return Result{ConnectionName: req.ConnectionName, RootName: req.RootName, Failed: true}, ErrNoPath
}

func heuristic(g *meshgraph.Graph, nodeID string, goalCenter board.Point, cfg Config, mem memory, r *rng.Rand) float64 {
	n, ok := g.Node(nodeID)
	if !ok {
		return 0
	}
	dist := board.Dist(n.Rect.Center(), goalCenter)
	penalty := cfg.NodePfFactor * mem[nodeID]
	jitter := r.Float64() * 1e-9

	return dist + penalty + jitter
}

// chainVisited walks the arena's parent chain from idx and returns the
// set of node ids already on this candidate's path, enforcing "no node
// revisit within a chain."
func chainVisited(arena []candidate, idx int32) map[string]bool {
	visited := make(map[string]bool)
	for idx != -1 {
		visited[arena[idx].nodeID] = true
		idx = arena[idx].parent
	}

	return visited
}

// chainUsedPorts walks the arena's parent chain from idx and returns the
// set of port point ids already crossed on this candidate's path,
// enforcing "no port-point revisit."
func chainUsedPorts(arena []candidate, idx int32) map[string]bool {
	used := make(map[string]bool)
	for idx != -1 {
		if arena[idx].entryPortID != "" {
			used[arena[idx].entryPortID] = true
		}
		idx = arena[idx].parent
	}

	return used
}

// reconstructResult walks the arena's parent chain to build the ordered
// node/port sequences, then adds the close-out entry-to-end-target Pf
// delta at the goal node.
func reconstructResult(g *meshgraph.Graph, req Request, arena []candidate, idx int32, pathCost float64) Result {
	var nodesRev, portsRev []string
	cur := idx
	for cur != -1 {
		nodesRev = append(nodesRev, arena[cur].nodeID)
		if arena[cur].entryPortID != "" {
			portsRev = append(portsRev, arena[cur].entryPortID)
		}
		cur = arena[cur].parent
	}
	nodes := make([]string, len(nodesRev))
	for i, id := range nodesRev {
		nodes[len(nodesRev)-1-i] = id
	}
	ports := make([]string, len(portsRev))
	for i, id := range portsRev {
		ports[len(portsRev)-1-i] = id
	}

	goal := arena[idx]
	entryPoint := req.StartPoint
	entryZ := goal.z
	if goal.entryPortID != "" {
		if ep, ok := g.PortPoint(goal.entryPortID); ok {
			entryPoint = ep.Point()
			entryZ = ep.Z
		}
	}
	baseline := NodePf(g, req.GoalNodeID)
	withCloseout := pfWithExtraChord(g, req.GoalNodeID, entryPoint, entryZ, req.GoalPoint, goal.z)
	closeout := FailureCost(withCloseout) - FailureCost(baseline)
	if closeout < 0 {
		closeout = 0
	}

	return Result{
		ConnectionName: req.ConnectionName,
		RootName:       req.RootName,
		NodeSequence:   nodes,
		PortSequence:   ports,
		Cost:           pathCost + closeout,
	}
}
