package highdensityrouting

import (
	"encoding/json"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/cache"
	"github.com/pcbroute/autoroute/meshgraph"
)

// Build produces one NodeResult per mesh node that has at least one
// assigned connection chord. c may be nil, in which case every node is
// solved directly; correctness does not depend on a cache being present
// (spec.md §5).
func Build(g *meshgraph.Graph, cfg Config, c cache.Cache) ([]NodeResult, error) {
	var out []NodeResult
	for _, id := range g.NodeIDs() {
		chords := nodeChords(g, id)
		if len(chords) == 0 {
			continue
		}
		nr, err := buildNodeCached(g, id, chords, cfg, c)
		if err != nil {
			return nil, err
		}
		out = append(out, nr)
	}

	return out, nil
}

// buildNodeCached wraps buildNode with the content-hash cache lookup
// described by spec.md §6: the same node geometry, hyperparameters and
// net connectivity always produce the same intra-node routing, so a hit
// skips buildNode entirely.
func buildNodeCached(g *meshgraph.Graph, id string, chords []chord, cfg Config, c cache.Cache) (NodeResult, error) {
	if c == nil {
		return buildNode(g, id, chords, cfg)
	}

	key := nodeCacheKey(g, id, chords, cfg)
	if raw, ok := c.Get(key); ok {
		var cached NodeResult
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	result, err := buildNode(g, id, chords, cfg)
	if err != nil {
		return NodeResult{}, err
	}
	if raw, err := json.Marshal(result); err == nil {
		c.Set(key, raw)
	}

	return result, nil
}

// nodeCacheKey builds the intra-node-solver cache key for node id: its
// chords' endpoint points, the via/jumper hyperparameters, the node's
// available layers, and the set of connection names crossing it.
func nodeCacheKey(g *meshgraph.Graph, id string, chords []chord, cfg Config) string {
	node := g.MustNode(id)

	points := make([]board.Point, 0, len(chords)*2)
	names := make([]string, 0, len(chords))
	for _, c := range chords {
		points = append(points, c.a.Point(), c.b.Point())
		names = append(names, c.connectionName)
	}

	hyperparameters := map[string]float64{
		"viaDiameter":     cfg.ViaDiameter,
		"viaMargin":       cfg.ViaMargin,
		"jumperFootprint": cfg.JumperFootprint,
	}

	return cache.IntraNodeSolverKey(points, hyperparameters, node.AvailableZ.Slice(), names)
}

// buildNode routes every chord at node id: same-z chords that don't cross
// any earlier-placed same-z chord get a direct wire, and a same-z chord
// that does cross one is rendered as a jumper instead, charged against the
// node's footprint budget. A chord whose two endpoints differ in z always
// gets a wire with a via and is not checked for crossings.
func buildNode(g *meshgraph.Graph, id string, chords []chord, cfg Config) (NodeResult, error) {
	node := g.MustNode(id)
	result := NodeResult{NodeID: id}

	var placedSameZ []chord // chords already committed to a bare wire, by z
	jumperArea := 0.0

	for _, c := range chords {
		if c.a.Z == c.b.Z {
			conflict := false
			for _, placed := range placedSameZ {
				if placed.a.Z != c.a.Z {
					continue
				}
				if chordsCross(placed.paramA, placed.paramB, c.paramA, c.paramB) {
					conflict = true

					break
				}
			}
			if conflict {
				jumperArea += cfg.JumperFootprint
				result.Jumpers = append(result.Jumpers, Jumper{
					ConnectionName: c.connectionName,
					Start:          c.a.Point(), End: c.b.Point(),
					Z: c.a.Z,
				})

				continue
			}
			placedSameZ = append(placedSameZ, c)
			result.Polylines = append(result.Polylines, Polyline{
				ConnectionName: c.connectionName,
				Points: []Point3{
					{X: c.a.X, Y: c.a.Y, Z: c.a.Z},
					{X: c.b.X, Y: c.b.Y, Z: c.b.Z},
				},
			})

			continue
		}

		via, err := viaLocation(node.Rect, c.a.Point(), c.b.Point(), cfg)
		if err != nil {
			return NodeResult{}, err
		}
		result.Polylines = append(result.Polylines, Polyline{
			ConnectionName: c.connectionName,
			Points: []Point3{
				{X: c.a.X, Y: c.a.Y, Z: c.a.Z},
				{X: via.X, Y: via.Y, Z: c.a.Z},
				{X: via.X, Y: via.Y, Z: c.b.Z},
				{X: c.b.X, Y: c.b.Y, Z: c.b.Z},
			},
		})
	}

	if node.Rect.Area() > 0 && jumperArea > node.Rect.Area() {
		result.Failed = true
	}

	return result, nil
}

// viaLocation picks the transition point for a z-changing chord: the
// segment midpoint, clamped inside the node rectangle inset by
// d_v/2 + margin so the via's full diameter stays within bounds. A node
// too small to hold the via at all is an invariant violation rather than
// something to silently clamp away.
func viaLocation(rect board.Rect, a, b board.Point, cfg Config) (board.Point, error) {
	inset := cfg.ViaDiameter/2 + cfg.ViaMargin
	if rect.Width() < 2*inset || rect.Height() < 2*inset {
		return board.Point{}, ErrViaOutsideBounds
	}

	mid := board.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	minX, maxX := rect.MinX+inset, rect.MaxX-inset
	minY, maxY := rect.MinY+inset, rect.MaxY-inset

	return board.Point{X: clamp(mid.X, minX, maxX), Y: clamp(mid.Y, minY, maxY)}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
