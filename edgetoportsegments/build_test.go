package edgetoportsegments_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/capacitypathing"
	"github.com/pcbroute/autoroute/edgetoportsegments"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeInARow builds a beside b-lo and b-hi, so connections crossing the
// a/b-lo boundary in opposite directions get different downstream
// projections and can be ordered.
func threeInARow(t *testing.T) *meshgraph.Graph {
	t.Helper()
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "a", Rect: board.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 10}, AvailableZ: board.NewLayerSet(0)}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "b-lo", Rect: board.Rect{MinX: 5, MinY: 0, MaxX: 10, MaxY: 5}, AvailableZ: board.NewLayerSet(0)}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "b-hi", Rect: board.Rect{MinX: 5, MinY: 5, MaxX: 10, MaxY: 10}, AvailableZ: board.NewLayerSet(0)}))
	require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{
		A: "a", B: "b-lo",
		Shared:  board.SharedEdge{Vertical: true, Coord: 5, Lo: 0, Hi: 5},
		MutualZ: board.NewLayerSet(0),
	}))
	require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{
		A: "a", B: "b-hi",
		Shared:  board.SharedEdge{Vertical: true, Coord: 5, Lo: 5, Hi: 10},
		MutualZ: board.NewLayerSet(0),
	}))

	return g
}

func TestBuild_OrdersByDownstreamProjection(t *testing.T) {
	g := threeInARow(t)
	results := []capacitypathing.Result{
		{ConnectionName: "hi", NodeSequence: []string{"a", "b-hi"}},
		{ConnectionName: "lo", NodeSequence: []string{"a", "b-lo"}},
		// Crosses the same edge toward a, whose center (y=5) projects
		// above b-lo's (y=2.5); by name alone "back" would sort first.
		{ConnectionName: "back", NodeSequence: []string{"b-lo", "a"}},
	}
	byEdge, err := edgetoportsegments.Build(g, results)
	require.NoError(t, err)
	assert.Len(t, byEdge, 2)

	loEdgeID, _ := g.EdgeBetween("a", "b-lo")
	require.Contains(t, byEdge, loEdgeID)
	require.Len(t, byEdge[loEdgeID], 2)
	assert.Equal(t, "lo", byEdge[loEdgeID][0].ConnectionName)
	assert.Equal(t, "back", byEdge[loEdgeID][1].ConnectionName)
}

func TestBuild_SkipsFailedConnections(t *testing.T) {
	g := threeInARow(t)
	results := []capacitypathing.Result{
		{ConnectionName: "dead", Failed: true, NodeSequence: []string{"a", "b-lo"}},
	}
	byEdge, err := edgetoportsegments.Build(g, results)
	require.NoError(t, err)
	assert.Empty(t, byEdge)
}

func TestBuild_MissingEdgeIsInvariantViolation(t *testing.T) {
	g := threeInARow(t)
	results := []capacitypathing.Result{
		{ConnectionName: "broken", NodeSequence: []string{"b-lo", "b-hi"}}, // not adjacent
	}
	_, err := edgetoportsegments.Build(g, results)
	assert.ErrorIs(t, err, edgetoportsegments.ErrNoEdgeBetweenNodes)
}
