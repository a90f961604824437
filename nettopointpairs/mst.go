package nettopointpairs

import (
	"fmt"
	"math"

	"github.com/pcbroute/autoroute/board"
)

// MinimumSpanningTreePairs runs Prim's algorithm in O(k²) over the
// Euclidean distances between conn's points and returns the k-1 MST edges
// as index pairs (i, j), i<j not guaranteed — pairs preserve parent->child
// discovery order, matching tsp/mst.go's adjacency-list return convention
// generalized to a flat pair list since point pairs, not adjacency lists,
// are this stage's contract.
func MinimumSpanningTreePairs(points []board.ConnectionPoint) ([][2]int, error) {
	k := len(points)
	if k < 2 {
		return nil, ErrTooFewEndpoints
	}
	if k == 2 {
		return [][2]int{{0, 1}}, nil
	}

	inMST := make([]bool, k)
	bestCost := make([]float64, k)
	parent := make([]int, k)
	for i := range bestCost {
		bestCost[i] = math.Inf(1)
		parent[i] = -1
	}
	bestCost[0] = 0

	pairs := make([][2]int, 0, k-1)
	for iter := 0; iter < k; iter++ {
		u := -1
		minW := math.Inf(1)
		for v := 0; v < k; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW = bestCost[v]
				u = v
			}
		}
		if u == -1 {
			// Cannot happen for a fully-connected Euclidean point set, but
			// guarded defensively since board.Validate runs before this stage.
			return nil, fmt.Errorf("%w: disconnected point set", ErrTooFewEndpoints)
		}
		inMST[u] = true
		if parent[u] != -1 {
			pairs = append(pairs, [2]int{parent[u], u})
		}
		for v := 0; v < k; v++ {
			if inMST[v] {
				continue
			}
			d := board.Dist(points[u].Point, points[v].Point)
			if d < bestCost[v] {
				bestCost[v] = d
				parent[v] = u
			}
		}
	}

	return pairs, nil
}

// DecomposeNet runs MinimumSpanningTreePairs over conn's points and
// returns the k-1 synthetic two-point connections named "<netName>_mstN",
// each with RootName==conn.Name and NetName==conn.EffectiveNet(), per
// spec.md §4.1.
func DecomposeNet(conn board.Connection) ([]board.Connection, error) {
	pairs, err := MinimumSpanningTreePairs(conn.PointsToConnect)
	if err != nil {
		return nil, fmt.Errorf("nettopointpairs: net %q: %w", conn.Name, err)
	}

	root := conn.EffectiveRoot()
	net := conn.EffectiveNet()
	out := make([]board.Connection, len(pairs))
	for i, pr := range pairs {
		out[i] = board.Connection{
			Name:     fmt.Sprintf("%s_mst%d", conn.Name, i+1),
			RootName: root,
			NetName:  net,
			PointsToConnect: []board.ConnectionPoint{
				conn.PointsToConnect[pr[0]],
				conn.PointsToConnect[pr[1]],
			},
		}
	}

	return out, nil
}
