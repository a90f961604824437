package edgetoportsegments

import (
	"sort"

	"github.com/pcbroute/autoroute/capacitypathing"
	"github.com/pcbroute/autoroute/meshgraph"
)

// Build walks every non-failed result's node sequence and records one
// Crossing per consecutive (upstream, downstream) pair, grouped by the
// edge id each step crosses. Each edge's crossing list is returned sorted
// by Projection ascending, ties broken by ConnectionName.
func Build(g *meshgraph.Graph, results []capacitypathing.Result) (map[string][]Crossing, error) {
	byEdge := make(map[string][]Crossing)

	for _, res := range results {
		if res.Failed {
			continue
		}
		seq := res.NodeSequence
		for i := 0; i+1 < len(seq); i++ {
			upstream, downstream := seq[i], seq[i+1]
			edgeID, ok := g.EdgeBetween(upstream, downstream)
			if !ok {
				return nil, ErrNoEdgeBetweenNodes
			}
			edge, _ := g.Edge(edgeID)
			downstreamNode, _ := g.Node(downstream)
			center := downstreamNode.Rect.Center()

			projection := center.X
			if edge.Shared.Vertical {
				projection = center.Y
			}

			byEdge[edgeID] = append(byEdge[edgeID], Crossing{
				ConnectionName:   res.ConnectionName,
				RootName:         res.RootName,
				EdgeID:           edgeID,
				UpstreamNodeID:   upstream,
				DownstreamNodeID: downstream,
				Projection:       projection,
			})
		}
	}

	for edgeID, crossings := range byEdge {
		sort.SliceStable(crossings, func(i, j int) bool {
			if crossings[i].Projection != crossings[j].Projection {
				return crossings[i].Projection < crossings[j].Projection
			}

			return crossings[i].ConnectionName < crossings[j].ConnectionName
		})
		byEdge[edgeID] = crossings
	}

	return byEdge, nil
}
