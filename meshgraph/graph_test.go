package meshgraph_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/stretchr/testify/require"
)

func twoNodeGraph(t *testing.T) (*meshgraph.Graph, string) {
	t.Helper()
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "n1", AvailableZ: board.NewLayerSet(0, 1), Capacity: 4}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "n2", AvailableZ: board.NewLayerSet(0, 1), Capacity: 4}))
	e := &meshgraph.CapacityEdge{A: "n1", B: "n2", MutualZ: board.NewLayerSet(0, 1)}
	require.NoError(t, g.AddEdge(e))

	return g, e.ID
}

func TestGraph_AddEdge_RejectsNoMutualLayers(t *testing.T) {
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "a", AvailableZ: board.NewLayerSet(0)}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "b", AvailableZ: board.NewLayerSet(1)}))
	err := g.AddEdge(&meshgraph.CapacityEdge{A: "a", B: "b", MutualZ: 0})
	require.ErrorIs(t, err, meshgraph.ErrNoMutualLayers)
}

func TestGraph_Neighbors_Deterministic(t *testing.T) {
	g := meshgraph.NewGraph()
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "n1"}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "n2"}))
	require.NoError(t, g.AddNode(&meshgraph.CapacityNode{ID: "n3"}))
	require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{A: "n1", B: "n3", MutualZ: board.NewLayerSet(0)}))
	require.NoError(t, g.AddEdge(&meshgraph.CapacityEdge{A: "n1", B: "n2", MutualZ: board.NewLayerSet(0)}))

	neighbors := g.Neighbors("n1")
	require.Len(t, neighbors, 2)
	require.Equal(t, "n2", neighbors[0].Other("n1"))
	require.Equal(t, "n3", neighbors[1].Other("n1"))
}

func TestGraph_PortPointAssignment(t *testing.T) {
	g, edgeID := twoNodeGraph(t)
	p := &meshgraph.PortPoint{EdgeID: edgeID, NodeA: "n1", NodeB: "n2", X: 1, Y: 1}
	require.NoError(t, g.AddPortPoint(p))

	require.NoError(t, g.Assign(p.ID, meshgraph.Assignment{ConnectionName: "c1", RootNet: "netA"}))
	// Same root net may reuse the port point.
	require.NoError(t, g.Assign(p.ID, meshgraph.Assignment{ConnectionName: "c1_mst2", RootNet: "netA"}))
	// A different root net may not.
	err := g.Assign(p.ID, meshgraph.Assignment{ConnectionName: "c2", RootNet: "netB"})
	require.ErrorIs(t, err, meshgraph.ErrAlreadyAssigned)

	g.Release(p.ID)
	require.False(t, g.IsAssigned(p.ID))
}

func TestGraph_RemoveNode_CleansEdgesAndPorts(t *testing.T) {
	g, edgeID := twoNodeGraph(t)
	p := &meshgraph.PortPoint{EdgeID: edgeID, NodeA: "n1", NodeB: "n2"}
	require.NoError(t, g.AddPortPoint(p))

	g.RemoveNode("n1")
	_, ok := g.Edge(edgeID)
	require.False(t, ok)
	_, ok = g.PortPoint(p.ID)
	require.False(t, ok)
}
