package capacitypathing

import (
	"container/heap"
	"math"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
)

// candidate is one arena-indexed A* search node, per spec.md §9's design
// note replacing a prevCandidate linked list with an arena of records and
// 32-bit parent indices.
type candidate struct {
	parent int32 // index into the arena, or -1 for the start
	nodeID string
	g      float64
}

// heapItem is what the priority queue orders: an arena index plus its f
// score, so the heap never copies the (potentially large) candidate
// record.
type heapItem struct {
	idx int32
	f   float64
}

type itemPQ []heapItem

func (pq itemPQ) Len() int            { return len(pq) }
func (pq itemPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq itemPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(heapItem)) }
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// congestionPenalty returns the cost of routing one more crossing through
// n, or +Inf if n is already at or beyond its allowed (possibly
// overloaded) capacity.
func congestionPenalty(n *meshgraph.CapacityNode, cfg Config) float64 {
	allowed := float64(n.Capacity) * cfg.MaxCapacityFactor
	if allowed <= 0 {
		allowed = 1
	}
	if float64(n.UsedCapacity) >= allowed {
		return math.Inf(1)
	}
	ratio := float64(n.UsedCapacity) / allowed

	return cfg.CongestionWeight * math.Pow(ratio, cfg.CongestionExponent)
}

// FindPath runs node-level A* from start to goal over g, respecting
// per-node capacity via congestionPenalty. blocked, if non-nil, marks node
// ids that must not be entered (used by the multi-section optimizer to
// keep a search inside an extracted subgraph).
func FindPath(g *meshgraph.Graph, start, goal string, cfg Config, blocked map[string]bool) ([]string, float64, error) {
	if _, ok := g.Node(start); !ok {
		return nil, 0, ErrStartNodeNotFound
	}
	goalNode, ok := g.Node(goal)
	if !ok {
		return nil, 0, ErrGoalNodeNotFound
	}
	goalCenter := goalNode.Rect.Center()

	arena := make([]candidate, 0, 64)
	bestG := make(map[string]float64)

	push := func(parent int32, nodeID string, g float64) int32 {
		arena = append(arena, candidate{parent: parent, nodeID: nodeID, g: g})

		return int32(len(arena) - 1)
	}

	startIdx := push(-1, start, 0)
	bestG[start] = 0

	pq := make(itemPQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, heapItem{idx: startIdx, f: heuristic(g, start, goalCenter)})

	visited := make(map[string]bool)

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(heapItem)
		cur := arena[it.idx]
		if visited[cur.nodeID] {
			continue
		}
		if cur.nodeID == goal {
			return reconstruct(arena, it.idx), cur.g, nil
		}
		visited[cur.nodeID] = true

		for _, e := range g.Neighbors(cur.nodeID) {
			nb := e.Other(cur.nodeID)
			if visited[nb] {
				continue
			}
			if blocked != nil && blocked[nb] && nb != goal {
				continue
			}
			nbNode, ok := g.Node(nb)
			if !ok {
				continue
			}
			curNode, _ := g.Node(cur.nodeID)
			step := board.Dist(curNode.Rect.Center(), nbNode.Rect.Center())
			penalty := congestionPenalty(nbNode, cfg)
			if math.IsInf(penalty, 1) {
				continue
			}
			newG := cur.g + step + penalty
			if existing, ok := bestG[nb]; ok && newG >= existing {
				continue
			}
			bestG[nb] = newG
			idx := push(it.idx, nb, newG)
			heap.Push(&pq, heapItem{idx: idx, f: newG + heuristic(g, nb, goalCenter)})
		}
	}

	return nil, 0, ErrNoPath
}

func heuristic(g *meshgraph.Graph, nodeID string, goalCenter board.Point) float64 {
	n, ok := g.Node(nodeID)
	if !ok {
		return 0
	}

	return board.Dist(n.Rect.Center(), goalCenter)
}

func reconstruct(arena []candidate, idx int32) []string {
	var rev []string
	for idx != -1 {
		rev = append(rev, arena[idx].nodeID)
		idx = arena[idx].parent
	}
	out := make([]string, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out
}
