package capacitypathing

import (
	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
)

// FindContainingNode maps a connection endpoint to the mesh node whose
// rectangle contains it. When rootNet is non-empty and no ordinary node
// contains pt, an off-board reserved node for that root net is accepted
// instead (spec.md §4.1's off-board entry nodes for stub connections).
func FindContainingNode(g *meshgraph.Graph, pt board.Point, rootNet string) (string, bool) {
	var offBoard string
	for _, id := range g.NodeIDs() {
		n := g.MustNode(id)
		if n.OffBoard {
			if rootNet != "" && n.TargetRootNet == rootNet {
				offBoard = id
			}

			continue
		}
		if n.Rect.Contains(pt) {
			return id, true
		}
	}
	if offBoard != "" {
		return offBoard, true
	}

	return "", false
}
