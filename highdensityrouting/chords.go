package highdensityrouting

import (
	"math"
	"sort"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
)

// chord is one connection's entry/exit pair at a node, in the same shape
// unravel's Pf model uses (this package only needs the crossing test, not
// the Pf accumulation).
type chord struct {
	connectionName string
	a, b           *meshgraph.PortPoint
	paramA, paramB float64
}

// perimeterParam mirrors unravel.perimeterParam: the distance along rect's
// perimeter, walked clockwise from (MinX, MinY), to a point known to lie
// on the boundary.
func perimeterParam(rect board.Rect, p board.Point) float64 {
	w := rect.Width()
	h := rect.Height()
	switch {
	case math.Abs(p.Y-rect.MinY) <= board.EpsBoundary:
		return p.X - rect.MinX
	case math.Abs(p.X-rect.MaxX) <= board.EpsBoundary:
		return w + (p.Y - rect.MinY)
	case math.Abs(p.Y-rect.MaxY) <= board.EpsBoundary:
		return w + h + (rect.MaxX - p.X)
	default:
		return 2*w + h + (rect.MaxY - p.Y)
	}
}

// chordsCross reports whether two chords, given as cyclic perimeter
// parameters, cross inside the node rectangle.
func chordsCross(a, b, c, d float64) bool {
	between := func(x, lo, hi float64) bool {
		if lo < hi {
			return x > lo && x < hi
		}

		return x > lo || x < hi
	}

	return between(c, a, b) != between(d, a, b)
}

// nodeChords collects one chord per connection with exactly two port
// points assigned at nodeID, sorted deterministically by connection name.
func nodeChords(g *meshgraph.Graph, nodeID string) []chord {
	node := g.MustNode(nodeID)
	byConn := make(map[string][]*meshgraph.PortPoint)
	for _, pid := range g.PortPointsOnNode(nodeID) {
		p, ok := g.PortPoint(pid)
		if !ok {
			continue
		}
		a, ok := g.AssignmentOf(pid)
		if !ok {
			continue
		}
		byConn[a.ConnectionName] = append(byConn[a.ConnectionName], p)
	}

	names := make([]string, 0, len(byConn))
	for name := range byConn {
		names = append(names, name)
	}
	sort.Strings(names)

	var chords []chord
	for _, name := range names {
		pts := byConn[name]
		if len(pts) != 2 {
			continue
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].ID < pts[j].ID })
		chords = append(chords, chord{
			connectionName: name,
			a:              pts[0], b: pts[1],
			paramA: perimeterParam(node.Rect, pts[0].Point()),
			paramB: perimeterParam(node.Rect, pts[1].Point()),
		})
	}

	return chords
}
