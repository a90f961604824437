package capacitypathing_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/capacitypathing"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds a, b, c, d in a straight line, each 5 units wide, fully
// connected end-to-end, with Capacity headroom so plain traversal never
// trips the congestion penalty.
func chain(t *testing.T) *meshgraph.Graph {
	t.Helper()
	g := meshgraph.NewGraph()
	ids := []string{"a", "b", "c", "d"}
	for i, id := range ids {
		r := board.Rect{MinX: float64(i * 5), MinY: 0, MaxX: float64(i*5 + 5), MaxY: 5}
		require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: id, Rect: r, AvailableZ: board.NewLayerSet(0), Capacity: 4}))
	}
	for i := 0; i < len(ids)-1; i++ {
		require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{
			A: ids[i], B: ids[i+1],
			Shared:  board.SharedEdge{Vertical: true, Coord: float64((i + 1) * 5), Lo: 0, Hi: 5},
			MutualZ: board.NewLayerSet(0),
		}))
	}

	return g
}

func TestFindPath_StraightChain(t *testing.T) {
	g := chain(t)
	path, cost, err := capacitypathing.FindPath(g, "a", "d", capacitypathing.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)
	assert.Greater(t, cost, 0.0)
}

func TestFindPath_UnknownEndpoints(t *testing.T) {
	g := chain(t)
	_, _, err := capacitypathing.FindPath(g, "zzz", "d", capacitypathing.DefaultConfig(), nil)
	assert.ErrorIs(t, err, capacitypathing.ErrStartNodeNotFound)

	_, _, err = capacitypathing.FindPath(g, "a", "zzz", capacitypathing.DefaultConfig(), nil)
	assert.ErrorIs(t, err, capacitypathing.ErrGoalNodeNotFound)
}

func TestFindPath_BlockedNodeForcesNoPath(t *testing.T) {
	g := chain(t)
	blocked := map[string]bool{"b": true, "c": true}
	_, _, err := capacitypathing.FindPath(g, "a", "d", capacitypathing.DefaultConfig(), blocked)
	assert.ErrorIs(t, err, capacitypathing.ErrNoPath)
}

func TestFindPath_OverloadedNodeIsUnreachable(t *testing.T) {
	g := chain(t)
	b, _ := g.Node("b")
	b.UsedCapacity = b.Capacity // at allowed ceiling with MaxCapacityFactor 1.0

	_, _, err := capacitypathing.FindPath(g, "a", "d", capacitypathing.DefaultConfig(), nil)
	assert.ErrorIs(t, err, capacitypathing.ErrNoPath)
}
