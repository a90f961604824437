package routestitch

import (
	"math"

	"github.com/pcbroute/autoroute/highdensityrouting"
)

// Stitch concatenates per-node polylines into one Route per sequence.
// nodeResults is highdensityrouting's full output; sequences gives each
// connection's node order.
func Stitch(nodeResults []highdensityrouting.NodeResult, sequences []Sequence, cfg Config) ([]Route, []Warning, error) {
	polyByNode := make(map[string]map[string]highdensityrouting.Polyline)
	jumpersByNode := make(map[string]map[string][]highdensityrouting.Jumper)
	for _, nr := range nodeResults {
		polys := make(map[string]highdensityrouting.Polyline, len(nr.Polylines))
		for _, p := range nr.Polylines {
			polys[p.ConnectionName] = p
		}
		polyByNode[nr.NodeID] = polys

		jumps := make(map[string][]highdensityrouting.Jumper)
		for _, j := range nr.Jumpers {
			jumps[j.ConnectionName] = append(jumps[j.ConnectionName], j)
		}
		jumpersByNode[nr.NodeID] = jumps
	}

	var routes []Route
	var warnings []Warning
	for _, seq := range sequences {
		route := Route{ConnectionName: seq.ConnectionName, RootName: seq.RootName}
		var prevNode string
		for i, nodeID := range seq.NodeSequence {
			poly, ok := polyByNode[nodeID][seq.ConnectionName]
			if !ok {
				return nil, nil, ErrMissingNodePolyline
			}
			route.Jumpers = append(route.Jumpers, jumpersByNode[nodeID][seq.ConnectionName]...)

			pts := orient(route.Points, poly.Points)
			if i == 0 {
				route.Points = append(route.Points, pts...)
				prevNode = nodeID

				continue
			}

			last := route.Points[len(route.Points)-1]
			gap := planarDistance(last, pts[0])
			if last.Z != pts[0].Z || gap > cfg.GapWarningThreshold {
				warnings = append(warnings, Warning{
					ConnectionName: seq.ConnectionName,
					NodeA:          prevNode, NodeB: nodeID,
					Gap: gap,
				})
			}
			if last.Z == pts[0].Z && gap <= cfg.DuplicateTolerance {
				pts = pts[1:]
			}
			route.Points = append(route.Points, pts...)
			prevNode = nodeID
		}
		routes = append(routes, route)
	}

	return routes, warnings, nil
}

// orient returns pts in the order that joins best against the end of
// stitched, reversing pts if its last point is the nearer match.
func orient(stitched []highdensityrouting.Point3, pts []highdensityrouting.Point3) []highdensityrouting.Point3 {
	if len(stitched) == 0 || len(pts) < 2 {
		return pts
	}
	last := stitched[len(stitched)-1]
	distStart := jointDistance(last, pts[0])
	distEnd := jointDistance(last, pts[len(pts)-1])
	if distEnd >= distStart {
		return pts
	}

	reversed := make([]highdensityrouting.Point3, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}

	return reversed
}

// jointDistance favors a same-z match: a z mismatch is penalized so a
// wrong-layer "nearer" point never wins over a correct-layer one.
func jointDistance(a, b highdensityrouting.Point3) float64 {
	d := planarDistance(a, b)
	if a.Z != b.Z {
		d += 1e6
	}

	return d
}

func planarDistance(a, b highdensityrouting.Point3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Hypot(dx, dy)
}
