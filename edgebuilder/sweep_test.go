package edgebuilder_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/edgebuilder"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourQuadrants builds a 2x2 uniform grid over a 10x10 board so adjacency
// is easy to predict: every cell touches exactly two others.
func fourQuadrants(t *testing.T) *meshgraph.Graph {
	t.Helper()
	g := meshgraph.NewGraph()
	rects := map[string]board.Rect{
		"nw": {MinX: 0, MinY: 5, MaxX: 5, MaxY: 10},
		"ne": {MinX: 5, MinY: 5, MaxX: 10, MaxY: 10},
		"sw": {MinX: 0, MinY: 0, MaxX: 5, MaxY: 5},
		"se": {MinX: 5, MinY: 0, MaxX: 10, MaxY: 5},
	}
	for id, r := range rects {
		require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: id, Rect: r, AvailableZ: board.NewLayerSet(0)}))
	}

	return g
}

func TestBuild_QuadrantAdjacency(t *testing.T) {
	g := fourQuadrants(t)
	require.NoError(t, edgebuilder.Build(g))

	assert.Equal(t, 2, g.Degree("nw"))
	assert.Equal(t, 2, g.Degree("ne"))
	assert.Equal(t, 2, g.Degree("sw"))
	assert.Equal(t, 2, g.Degree("se"))

	edgeID, ok := g.EdgeBetween("nw", "ne")
	require.True(t, ok)
	e, _ := g.Edge(edgeID)
	assert.True(t, e.Shared.Length() > 0)
	assert.True(t, e.Shared.Vertical) // nw/ne share the vertical boundary x=5
}

func TestBuild_NoMutualLayersNoEdge(t *testing.T) {
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "a", Rect: board.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}, AvailableZ: board.NewLayerSet(0)}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "b", Rect: board.Rect{MinX: 5, MinY: 0, MaxX: 10, MaxY: 5}, AvailableZ: board.NewLayerSet(1)}))
	require.NoError(t, edgebuilder.Build(g))
	_, ok := g.EdgeBetween("a", "b")
	assert.False(t, ok)
}
