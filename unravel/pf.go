package unravel

import (
	"math"
	"sort"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
)

// epsPf floors Pf away from exactly 1, per spec.md §4.8's "clipped to
// [0, 1-ε]".
const epsPf = 1e-6

// chord is one same-connection pair of port points assigned at a node.
type chord struct {
	a, b       board.Point
	paramA     float64
	paramB     float64
	za, zb     int
}

// perimeterParam maps a point known to lie on rect's boundary to a
// distance-along-the-perimeter parameter, walked clockwise from
// (MinX, MinY): top edge left-to-right, right edge top-to-bottom, bottom
// edge right-to-left, left edge bottom-to-top. This gives every node's
// assigned port points a single cyclic order, which is what the
// chord-crossing test below needs.
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
// parameters, cross inside the node rectangle: true iff exactly one of
// (c, d) lies on the open arc strictly between a and b (going in
// increasing-parameter direction).
func chordsCross(a, b, c, d float64) bool {
	between := func(x, lo, hi float64) bool {
		if lo < hi {
			return x > lo && x < hi
		}

		return x > lo || x < hi
	}
	cIn := between(c, a, b)
	dIn := between(d, a, b)

	return cIn != dIn
}

// nodeChords collects one chord per connection that has ≥2 port points
// assigned at nodeID, keyed by connection name. A connection with only
// one port point assigned at a node (a path endpoint) contributes no
// chord.
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
		key := a.ConnectionName
		byConn[key] = append(byConn[key], p)
	}

	var chords []chord
	names := make([]string, 0, len(byConn))
	for name := range byConn {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pts := byConn[name]
		if len(pts) < 2 {
			continue
		}
		// A connection should touch a node at most twice (once entering,
		// once leaving); if more are assigned, pair the first two
		// deterministically (by id) and ignore the rest defensively.
		sort.Slice(pts, func(i, j int) bool { return pts[i].ID < pts[j].ID })
		p0, p1 := pts[0], pts[1]
		chords = append(chords, chord{
			a: p0.Point(), b: p1.Point(),
			paramA: perimeterParam(node.Rect, p0.Point()),
			paramB: perimeterParam(node.Rect, p1.Point()),
			za:     p0.Z, zb: p1.Z,
		})
	}

	return chords
}

// crossingCounts returns numSameLayerCrossings and numTransitionPairCrossings
// for the chord set at a node, per spec.md §4.8.
func crossingCounts(chords []chord) (sameLayer, transitionPairs int) {
	for i := 0; i < len(chords); i++ {
		for j := i + 1; j < len(chords); j++ {
			if !chordsCross(chords[i].paramA, chords[i].paramB, chords[j].paramA, chords[j].paramB) {
				continue
			}
			iTransition := chords[i].za != chords[i].zb
			jTransition := chords[j].za != chords[j].zb
			if iTransition || jTransition {
				transitionPairs++
			} else if chords[i].za == chords[j].za {
				sameLayer++
			}
		}
	}

	return sameLayer, transitionPairs
}

// numEntryExitLayerChanges counts chords whose two endpoints differ in z.
func numEntryExitLayerChanges(chords []chord) int {
	n := 0
	for _, c := range chords {
		if c.za != c.zb {
			n++
		}
	}

	return n
}

// Pf returns the saturating probability-of-failure estimate for a node
// with the given capacity and crossing counts, clipped to [0, 1-ε].
func Pf(capacity, sameLayerCrossings, layerChanges, transitionPairCrossings int) float64 {
	if capacity < 1 {
		capacity = 1
	}
	load := float64(sameLayerCrossings) + 0.5*float64(layerChanges) + 1.5*float64(transitionPairCrossings)
	raw := 1 - math.Exp(-load/float64(capacity))
	if raw < 0 {
		raw = 0
	}
	if raw > 1-epsPf {
		raw = 1 - epsPf
	}

	return raw
}

// FailureCost converts a Pf value into the additive board-score
// contribution −log(1−Pf).
func FailureCost(pf float64) float64 {
	return -math.Log(1 - pf)
}

// NodePf computes the current Pf at nodeID from its actual assigned port
// points.
func NodePf(g *meshgraph.Graph, nodeID string) float64 {
	node := g.MustNode(nodeID)
	chords := nodeChords(g, nodeID)
	sameLayer, transitions := crossingCounts(chords)
	changes := numEntryExitLayerChanges(chords)

	return Pf(node.Capacity, sameLayer, changes, transitions)
}

// pfWithExtraChord returns the Pf at nodeID if, in addition to its
// currently assigned port points, a single extra chord (a at za, b at zb)
// were added. Used by the A* search to score a candidate entry/exit pair
// before committing it, without mutating the graph. A zero-value point
// (the sentinel for "no physical port yet", e.g. a connection's own
// terminal) is still given a perimeterParam via its nearest-edge
// approximation; this slightly under-counts geometric precision at a
// path's first and last node but keeps the model from requiring a
// virtual PortPoint there.
func pfWithExtraChord(g *meshgraph.Graph, nodeID string, a board.Point, za int, b board.Point, zb int) float64 {
	node := g.MustNode(nodeID)
	chords := nodeChords(g, nodeID)
	chords = append(chords, chord{
		a: a, b: b,
		paramA: perimeterParam(node.Rect, a),
		paramB: perimeterParam(node.Rect, b),
		za:     za, zb: zb,
	})
	sameLayer, transitions := crossingCounts(chords)
	changes := numEntryExitLayerChanges(chords)

	return Pf(node.Capacity, sameLayer, changes, transitions)
}

// BoardScore sums FailureCost(NodePf(n)) across every node in g, the
// additive board-score scoring rule of spec.md §4.8.
func BoardScore(g *meshgraph.Graph) float64 {
	total := 0.0
	for _, id := range g.NodeIDs() {
		total += FailureCost(NodePf(g, id))
	}

	return total
}
