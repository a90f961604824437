package edgebuilder

import (
	"sort"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
)

// roundKey quantizes a coordinate to the edge-boundary detection tolerance
// so that cells whose boundaries coincide within EpsBoundary map to the
// same bucket key.
func roundKey(x float64) int64 {
	return int64(x / board.EpsBoundary)
}

type boundedNode struct {
	id   string
	rect board.Rect
}

// Build derives every CapacityEdge for the mesh graph g and adds them to
// g. It reads g's nodes and writes only edges; it never mutates existing
// nodes.
func Build(g *meshgraph.Graph) error {
	ids := g.NodeIDs()
	nodes := make([]boundedNode, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		nodes = append(nodes, boundedNode{id: id, rect: n.Rect})
	}

	if err := matchVertical(g, nodes); err != nil {
		return err
	}
	if err := matchHorizontal(g, nodes); err != nil {
		return err
	}

	return nil
}

// matchVertical pairs cells across vertical boundaries: a cell whose right
// edge (MaxX) sits at coordinate c against a cell whose left edge (MinX)
// sits at the same c.
func matchVertical(g *meshgraph.Graph, nodes []boundedNode) error {
	leftOf := make(map[int64][]boundedNode)  // keyed by MaxX: cells to the left of the boundary
	rightOf := make(map[int64][]boundedNode) // keyed by MinX: cells to the right of the boundary
	for _, n := range nodes {
		leftOf[roundKey(n.rect.MaxX)] = append(leftOf[roundKey(n.rect.MaxX)], n)
		rightOf[roundKey(n.rect.MinX)] = append(rightOf[roundKey(n.rect.MinX)], n)
	}

	for key, left := range leftOf {
		right, ok := rightOf[key]
		if !ok {
			continue
		}
		if err := mergeIntervals(g, left, right, true); err != nil {
			return err
		}
	}

	return nil
}

// matchHorizontal pairs cells across horizontal boundaries analogously.
func matchHorizontal(g *meshgraph.Graph, nodes []boundedNode) error {
	below := make(map[int64][]boundedNode) // keyed by MaxY
	above := make(map[int64][]boundedNode) // keyed by MinY
	for _, n := range nodes {
		below[roundKey(n.rect.MaxY)] = append(below[roundKey(n.rect.MaxY)], n)
		above[roundKey(n.rect.MinY)] = append(above[roundKey(n.rect.MinY)], n)
	}

	for key, lower := range below {
		upper, ok := above[key]
		if !ok {
			continue
		}
		if err := mergeIntervals(g, lower, upper, false); err != nil {
			return err
		}
	}

	return nil
}

// mergeIntervals two-pointer merges a and b, each sorted by their interval
// along the non-shared axis, emitting an edge for every overlapping pair.
// vertical selects whether the shared boundary runs vertically (a,b vary
// in Y) or horizontally (a,b vary in X).
func mergeIntervals(g *meshgraph.Graph, a, b []boundedNode, vertical bool) error {
	lo := func(n boundedNode) float64 {
		if vertical {
			return n.rect.MinY
		}

		return n.rect.MinX
	}
	hi := func(n boundedNode) float64 {
		if vertical {
			return n.rect.MaxY
		}

		return n.rect.MaxX
	}

	sort.Slice(a, func(i, j int) bool {
		if lo(a[i]) != lo(a[j]) {
			return lo(a[i]) < lo(a[j])
		}

		return a[i].id < a[j].id
	})
	sort.Slice(b, func(i, j int) bool {
		if lo(b[i]) != lo(b[j]) {
			return lo(b[i]) < lo(b[j])
		}

		return b[i].id < b[j].id
	})

	// For every a, find all b's whose interval overlaps it. Since leaf
	// cells at the same boundary needn't be the same size, a plain
	// two-pointer sweep with a sliding window (rather than strict
	// advance-both) is used: for each a, scan forward through b from the
	// last position whose hi still exceeds a's lo.
	j0 := 0
	for _, na := range a {
		for j0 < len(b) && hi(b[j0]) <= lo(na)+board.EpsBoundary {
			j0++
		}
		for j := j0; j < len(b) && lo(b[j]) < hi(na)-board.EpsBoundary; j++ {
			if err := addEdgeIfOverlapping(g, na, b[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

func addEdgeIfOverlapping(g *meshgraph.Graph, a, b boundedNode) error {
	if a.id == b.id {
		return nil
	}
	if _, exists := g.EdgeBetween(a.id, b.id); exists {
		return nil
	}
	shared, ok := board.SharedBoundary(a.rect, b.rect)
	if !ok {
		return nil
	}
	na, _ := g.Node(a.id)
	nb, _ := g.Node(b.id)
	mutual := na.AvailableZ.Intersect(nb.AvailableZ)
	if mutual.Empty() {
		return nil
	}

	return g.AddEdge(&meshgraph.CapacityEdge{A: a.id, B: b.id, Shared: shared, MutualZ: mutual})
}
