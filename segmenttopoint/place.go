package segmenttopoint

import (
	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/edgetoportsegments"
	"github.com/pcbroute/autoroute/meshgraph"
)

// Place converts each edge's ordered crossing list into concrete port
// points added to g, preserving crossing order and centering the placed
// points within the segment. Edges whose crossing count cannot fit at the
// minimum spacing are returned as Overflows rather than placed.
func Place(g *meshgraph.Graph, byEdge map[string][]edgetoportsegments.Crossing, cfg Config) ([]Overflow, error) {
	s := cfg.Spacing()
	var overflows []Overflow

	for _, edgeID := range sortedKeys(byEdge) {
		crossings := byEdge[edgeID]
		n := len(crossings)
		if n == 0 {
			continue
		}
		edge, ok := g.Edge(edgeID)
		if !ok {
			continue
		}
		if edge.MutualZ.Empty() {
			return overflows, ErrNoAvailableLayer
		}
		length := edge.Shared.Length()
		if float64(n)*s > length {
			overflows = append(overflows, Overflow{EdgeID: edgeID, Crossings: crossings})

			continue
		}

		z, _ := edge.MutualZ.Lowest()
		offset := (length - float64(n)*s) / 2

		points := make([]*meshgraph.PortPoint, n)
		for i := range crossings {
			t := edge.Shared.Lo + offset + s/2 + float64(i)*s
			loc := edge.Shared.PointAt(t)
			p := &meshgraph.PortPoint{
				X: loc.X, Y: loc.Y, Z: z,
				EdgeID: edgeID, NodeA: edge.A, NodeB: edge.B,
			}
			if err := g.AddPortPoint(p); err != nil {
				return overflows, err
			}
			points[i] = p
		}

		mid := edge.Shared.Lo + length/2
		centermostIdx := centermostIndex(edge, points, mid)
		centermost := points[centermostIdx].Point()
		for _, p := range points {
			p.DCentermost = board.Dist(p.Point(), centermost)
		}
	}

	return overflows, nil
}

func centermostIndex(edge *meshgraph.CapacityEdge, points []*meshgraph.PortPoint, mid float64) int {
	best := 0
	bestDist := -1.0
	for i, p := range points {
		v := p.Y
		if !edge.Shared.Vertical {
			v = p.X
		}
		d := v - mid
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

func sortedKeys(m map[string][]edgetoportsegments.Crossing) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// simple insertion sort: edge ids are short-lived, small-N strings
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}

	return keys
}
