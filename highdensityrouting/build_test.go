package highdensityrouting_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/cache"
	"github.com/pcbroute/autoroute/highdensityrouting"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneNode builds a 10x10 node "n" on z=0..1 with one neighbor on each
// side, joined to n by edges with the neighbor's id ("west", "east",
// "south", "north"); callers add port points on those edges and assign
// them directly.
func oneNode(t *testing.T) *meshgraph.Graph {
	t.Helper()
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{
		ID: "n", Rect: board.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
		AvailableZ: board.NewLayerSet(0, 1),
	}))
	neighbors := []struct {
		id     string
		rect   board.Rect
		shared board.SharedEdge
	}{
		{"west", board.Rect{MinX: -10, MinY: 0, MaxX: 0, MaxY: 10}, board.SharedEdge{Vertical: true, Coord: 0, Lo: 0, Hi: 10}},
		{"east", board.Rect{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10}, board.SharedEdge{Vertical: true, Coord: 10, Lo: 0, Hi: 10}},
		{"south", board.Rect{MinX: 0, MinY: -10, MaxX: 10, MaxY: 0}, board.SharedEdge{Vertical: false, Coord: 0, Lo: 0, Hi: 10}},
		{"north", board.Rect{MinX: 0, MinY: 10, MaxX: 10, MaxY: 20}, board.SharedEdge{Vertical: false, Coord: 10, Lo: 0, Hi: 10}},
	}
	for _, nb := range neighbors {
		require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: nb.id, Rect: nb.rect, AvailableZ: board.NewLayerSet(0, 1)}))
		require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{ID: nb.id, A: "n", B: nb.id, Shared: nb.shared, MutualZ: board.NewLayerSet(0, 1)}))
	}

	return g
}

func addChord(t *testing.T, g *meshgraph.Graph, conn string, a, b *meshgraph.PortPoint) {
	t.Helper()
	require.NoError(t, g.AddPortPoint(a))
	require.NoError(t, g.AddPortPoint(b))
	require.NoError(t, g.Assign(a.ID, meshgraph.Assignment{ConnectionName: conn, RootNet: conn}))
	require.NoError(t, g.Assign(b.ID, meshgraph.Assignment{ConnectionName: conn, RootNet: conn}))
}

func TestBuild_SameLayerNoCrossing(t *testing.T) {
	g := oneNode(t)
	addChord(t, g, "x",
		&meshgraph.PortPoint{ID: "x1", X: 0, Y: 3, Z: 0, EdgeID: "west", NodeA: "n", NodeB: "west"},
		&meshgraph.PortPoint{ID: "x2", X: 10, Y: 7, Z: 0, EdgeID: "east", NodeA: "n", NodeB: "east"},
	)

	results, err := highdensityrouting.Build(g, highdensityrouting.DefaultConfig(0.5), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Polylines, 1)
	assert.Empty(t, results[0].Jumpers)
	assert.False(t, results[0].Failed)
	assert.Len(t, results[0].Polylines[0].Points, 2)
}

func TestBuild_LayerTransitionInsertsVia(t *testing.T) {
	g := oneNode(t)
	addChord(t, g, "x",
		&meshgraph.PortPoint{ID: "x1", X: 0, Y: 3, Z: 0, EdgeID: "west", NodeA: "n", NodeB: "west"},
		&meshgraph.PortPoint{ID: "x2", X: 10, Y: 7, Z: 1, EdgeID: "east", NodeA: "n", NodeB: "east"},
	)

	results, err := highdensityrouting.Build(g, highdensityrouting.DefaultConfig(0.5), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Polylines, 1)
	pts := results[0].Polylines[0].Points
	require.Len(t, pts, 4)
	assert.Equal(t, pts[1].X, pts[2].X)
	assert.Equal(t, pts[1].Y, pts[2].Y)
	assert.NotEqual(t, pts[1].Z, pts[2].Z)

	rect := board.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	assert.True(t, rect.Contains(board.Point{X: pts[1].X, Y: pts[1].Y}))
}

func TestBuild_CrossingSameLayerChordsProduceOneJumper(t *testing.T) {
	g := oneNode(t)
	// x runs bottom-to-top through the middle, y runs left-to-right through
	// the middle: their chords cross inside the rectangle.
	addChord(t, g, "x",
		&meshgraph.PortPoint{ID: "x1", X: 5, Y: 0, Z: 0, EdgeID: "south", NodeA: "n", NodeB: "south"},
		&meshgraph.PortPoint{ID: "x2", X: 5, Y: 10, Z: 0, EdgeID: "north", NodeA: "n", NodeB: "north"},
	)
	addChord(t, g, "y",
		&meshgraph.PortPoint{ID: "y1", X: 0, Y: 5, Z: 0, EdgeID: "west", NodeA: "n", NodeB: "west"},
		&meshgraph.PortPoint{ID: "y2", X: 10, Y: 5, Z: 0, EdgeID: "east", NodeA: "n", NodeB: "east"},
	)

	results, err := highdensityrouting.Build(g, highdensityrouting.DefaultConfig(0.5), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Polylines, 1)
	require.Len(t, results[0].Jumpers, 1)
	assert.Equal(t, "y", results[0].Jumpers[0].ConnectionName)
	assert.False(t, results[0].Failed)
}

func TestBuild_JumperFootprintOverflowFails(t *testing.T) {
	g := oneNode(t)
	addChord(t, g, "x",
		&meshgraph.PortPoint{ID: "x1", X: 5, Y: 0, Z: 0, EdgeID: "south", NodeA: "n", NodeB: "south"},
		&meshgraph.PortPoint{ID: "x2", X: 5, Y: 10, Z: 0, EdgeID: "north", NodeA: "n", NodeB: "north"},
	)
	addChord(t, g, "y",
		&meshgraph.PortPoint{ID: "y1", X: 0, Y: 5, Z: 0, EdgeID: "west", NodeA: "n", NodeB: "west"},
		&meshgraph.PortPoint{ID: "y2", X: 10, Y: 5, Z: 0, EdgeID: "east", NodeA: "n", NodeB: "east"},
	)

	// A single jumper footprint bigger than the node's own area forces a
	// budget failure.
	cfg := highdensityrouting.DefaultConfig(0.5)
	cfg.JumperFootprint = 1000

	results, err := highdensityrouting.Build(g, cfg, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Failed)
}

func TestBuild_ViaTooLargeForNodeIsInvariantViolation(t *testing.T) {
	g := oneNode(t)
	addChord(t, g, "x",
		&meshgraph.PortPoint{ID: "x1", X: 0, Y: 3, Z: 0, EdgeID: "west", NodeA: "n", NodeB: "west"},
		&meshgraph.PortPoint{ID: "x2", X: 10, Y: 7, Z: 1, EdgeID: "east", NodeA: "n", NodeB: "east"},
	)

	cfg := highdensityrouting.DefaultConfig(50) // via far wider than the 10x10 node
	_, err := highdensityrouting.Build(g, cfg, nil)
	assert.ErrorIs(t, err, highdensityrouting.ErrViaOutsideBounds)
}

func TestBuild_SecondRunWithSameCacheHitsAndMatches(t *testing.T) {
	build := func() *meshgraph.Graph {
		g := oneNode(t)
		addChord(t, g, "x",
			&meshgraph.PortPoint{ID: "x1", X: 0, Y: 3, Z: 0, EdgeID: "west", NodeA: "n", NodeB: "west"},
			&meshgraph.PortPoint{ID: "x2", X: 10, Y: 7, Z: 1, EdgeID: "east", NodeA: "n", NodeB: "east"},
		)

		return g
	}

	c := cache.NewMemory()
	cfg := highdensityrouting.DefaultConfig(0.5)

	first, err := highdensityrouting.Build(build(), cfg, c)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Hits())
	assert.Equal(t, 1, c.Misses())

	second, err := highdensityrouting.Build(build(), cfg, c)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Hits())
	assert.Equal(t, first, second)
}
