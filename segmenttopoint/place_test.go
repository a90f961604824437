package segmenttopoint_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/edgetoportsegments"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/segmenttopoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoNodeEdge(t *testing.T, length float64) (*meshgraph.Graph, string) {
	t.Helper()
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "a", Rect: board.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: length}, AvailableZ: board.NewLayerSet(0, 1)}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "b", Rect: board.Rect{MinX: 5, MinY: 0, MaxX: 10, MaxY: length}, AvailableZ: board.NewLayerSet(0, 1)}))
	require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{
		A: "a", B: "b",
		Shared:  board.SharedEdge{Vertical: true, Coord: 5, Lo: 0, Hi: length},
		MutualZ: board.NewLayerSet(0, 1),
	}))
	edgeID, _ := g.EdgeBetween("a", "b")

	return g, edgeID
}

func TestPlace_PlacesInOrderWithinSegment(t *testing.T) {
	g, edgeID := twoNodeEdge(t, 10)
	byEdge := map[string][]edgetoportsegments.Crossing{
		edgeID: {
			{ConnectionName: "c1", EdgeID: edgeID},
			{ConnectionName: "c2", EdgeID: edgeID},
		},
	}
	cfg := segmenttopoint.DefaultConfig(0.2) // spacing = 0.3

	overflows, err := segmenttopoint.Place(g, byEdge, cfg)
	require.NoError(t, err)
	assert.Empty(t, overflows)

	ids := g.PortPointsOnEdge(edgeID)
	require.Len(t, ids, 2)
	p0, _ := g.PortPoint(ids[0])
	p1, _ := g.PortPoint(ids[1])
	assert.Less(t, p0.Y, p1.Y)
	assert.InDelta(t, 0, p0.Z, 0.0001)
}

func TestPlace_OverflowWhenTooManyCrossings(t *testing.T) {
	g, edgeID := twoNodeEdge(t, 1) // 1-unit segment
	byEdge := map[string][]edgetoportsegments.Crossing{
		edgeID: {
			{ConnectionName: "c1", EdgeID: edgeID},
			{ConnectionName: "c2", EdgeID: edgeID},
			{ConnectionName: "c3", EdgeID: edgeID},
			{ConnectionName: "c4", EdgeID: edgeID},
			{ConnectionName: "c5", EdgeID: edgeID},
		},
	}
	cfg := segmenttopoint.DefaultConfig(0.5) // spacing = 0.6, 5*0.6=3 > 1

	overflows, err := segmenttopoint.Place(g, byEdge, cfg)
	require.NoError(t, err)
	require.Len(t, overflows, 1)
	assert.Equal(t, edgeID, overflows[0].EdgeID)
	assert.Empty(t, g.PortPointsOnEdge(edgeID))
}

func TestPlace_DCentermostIsZeroForCentermostPoint(t *testing.T) {
	g, edgeID := twoNodeEdge(t, 10)
	byEdge := map[string][]edgetoportsegments.Crossing{
		edgeID: {
			{ConnectionName: "c1", EdgeID: edgeID},
			{ConnectionName: "c2", EdgeID: edgeID},
			{ConnectionName: "c3", EdgeID: edgeID},
		},
	}
	cfg := segmenttopoint.DefaultConfig(0.1)

	_, err := segmenttopoint.Place(g, byEdge, cfg)
	require.NoError(t, err)

	ids := g.PortPointsOnEdge(edgeID)
	require.Len(t, ids, 3)
	middle, _ := g.PortPoint(ids[1])
	assert.InDelta(t, 0, middle.DCentermost, 0.0001)
}
