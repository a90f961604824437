package deadendprune_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/deadendprune"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a - b - c - d, where a is a target and d is a dangling non-target tail.
func TestPrune_RemovesDanglingTail(t *testing.T) {
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "a", ContainsTarget: true}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "b"}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "c"}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "d"}))
	require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{A: "a", B: "b", MutualZ: board.NewLayerSet(0)}))
	require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{A: "b", B: "c", MutualZ: board.NewLayerSet(0)}))
	require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{A: "c", B: "d", MutualZ: board.NewLayerSet(0)}))

	removed := deadendprune.Prune(g)
	assert.Equal(t, 3, removed) // b, c, d all collapse once d is gone

	_, ok := g.Node("a")
	assert.True(t, ok)
	_, ok = g.Node("d")
	assert.False(t, ok)
}

func TestPrune_PreservesTargets(t *testing.T) {
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "a", ContainsTarget: true}))
	removed := deadendprune.Prune(g)
	assert.Equal(t, 0, removed)
	_, ok := g.Node("a")
	assert.True(t, ok)
}
