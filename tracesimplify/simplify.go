package tracesimplify

import (
	"math"

	"github.com/pcbroute/autoroute/highdensityrouting"
	"github.com/pcbroute/autoroute/routestitch"
)

// Simplify runs cfg.Passes rounds of collinear-segment merging and
// redundant-via removal over route, returning a new Route. route itself
// is left unmodified.
func Simplify(route routestitch.Route, cfg Config) routestitch.Route {
	pts := append([]highdensityrouting.Point3(nil), route.Points...)
	for pass := 0; pass < cfg.Passes; pass++ {
		next := removeRedundantVias(pts)
		next = mergeCollinear(next, cfg.CollinearEpsilon)
		if samePoints(pts, next) {
			break
		}
		pts = next
	}

	out := route
	out.Points = pts

	return out
}

// removeRedundantVias drops a via-pair round trip: two consecutive z
// transitions at the same (x,y) that land back on the z the route was
// already on, with no wire segment traversed in between.
func removeRedundantVias(pts []highdensityrouting.Point3) []highdensityrouting.Point3 {
	if len(pts) < 3 {
		return pts
	}

	out := make([]highdensityrouting.Point3, 0, len(pts))
	i := 0
	for i < len(pts) {
		if i+2 < len(pts) && samePlanar(pts[i], pts[i+1]) && samePlanar(pts[i+1], pts[i+2]) && pts[i].Z == pts[i+2].Z {
			out = append(out, pts[i])
			i += 3

			continue
		}
		out = append(out, pts[i])
		i++
	}

	return out
}

// mergeCollinear drops a middle point of three consecutive same-z points
// that lie on one straight line and in monotonic order (so a
// turnaround point is never mistaken for collinear).
func mergeCollinear(pts []highdensityrouting.Point3, eps float64) []highdensityrouting.Point3 {
	if len(pts) < 3 {
		return pts
	}

	out := make([]highdensityrouting.Point3, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts)-1; i++ {
		prev, cur, nxt := out[len(out)-1], pts[i], pts[i+1]
		if prev.Z == cur.Z && cur.Z == nxt.Z && collinear(prev, cur, nxt, eps) {
			continue
		}
		out = append(out, cur)
	}
	out = append(out, pts[len(pts)-1])

	return out
}

func collinear(a, b, c highdensityrouting.Point3, eps float64) bool {
	abx, aby := b.X-a.X, b.Y-a.Y
	acx, acy := c.X-a.X, c.Y-a.Y
	cross := abx*acy - aby*acx
	if math.Abs(cross) > eps {
		return false
	}

	// Reject a reversal (b beyond a relative to c, or vice versa): b must
	// lie between a and c along the shared line.
	dot := abx*acx + aby*acy
	lenSq := acx*acx + acy*acy

	return dot >= -eps && dot <= lenSq+eps
}

func samePlanar(a, b highdensityrouting.Point3) bool {
	return a.X == b.X && a.Y == b.Y
}

func samePoints(a, b []highdensityrouting.Point3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
