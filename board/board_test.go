package board_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleBoard() board.Board {
	return board.Board{
		Bounds:        board.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
		LayerCount:    2,
		MinTraceWidth: 0.2,
		Connections: []board.Connection{
			{
				Name: "net1",
				PointsToConnect: []board.ConnectionPoint{
					{Point: board.Point{X: 0, Y: 5}, AllowedLayers: board.NewLayerSet(0)},
					{Point: board.Point{X: 10, Y: 5}, AllowedLayers: board.NewLayerSet(0)},
				},
			},
		},
	}
}

func TestBoardValidate_OK(t *testing.T) {
	require.NoError(t, simpleBoard().Validate())
}

func TestBoardValidate_DegenerateBounds(t *testing.T) {
	b := simpleBoard()
	b.Bounds = board.Rect{MinX: 0, MinY: 0, MaxX: 0, MaxY: 10}
	require.ErrorIs(t, b.Validate(), board.ErrDegenerateBoard)
}

func TestBoardValidate_UnreachableEndpoints(t *testing.T) {
	b := simpleBoard()
	b.Connections[0].PointsToConnect = b.Connections[0].PointsToConnect[:1]
	require.ErrorIs(t, b.Validate(), board.ErrUnreachableEndpoints)
}

func TestBoardValidate_FullyOccludedTarget(t *testing.T) {
	b := simpleBoard()
	b.Obstacles = []board.Obstacle{
		{Rect: board.Rect{MinX: -1, MinY: 4, MaxX: 1, MaxY: 6}, Layers: board.NewLayerSet(0)},
	}
	require.ErrorIs(t, b.Validate(), board.ErrObstacleOccludesTarget)
}

func TestLayerSet(t *testing.T) {
	s := board.NewLayerSet(0, 2, 4)
	assert.True(t, s.Has(0))
	assert.False(t, s.Has(1))
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []int{0, 2, 4}, s.Slice())

	lowest, ok := s.Lowest()
	assert.True(t, ok)
	assert.Equal(t, 0, lowest)
}

func TestLayerName(t *testing.T) {
	assert.Equal(t, "top", board.LayerName(0, 4))
	assert.Equal(t, "bottom", board.LayerName(3, 4))
	assert.Equal(t, "inner1", board.LayerName(1, 4))
	assert.Equal(t, "inner2", board.LayerName(2, 4))
}

func TestSharedBoundary(t *testing.T) {
	a := board.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}
	b2 := board.Rect{MinX: 5, MinY: 0, MaxX: 10, MaxY: 5}
	edge, ok := board.SharedBoundary(a, b2)
	require.True(t, ok)
	assert.True(t, edge.Vertical)
	assert.InDelta(t, 5.0, edge.Coord, board.EpsCoord)
	assert.InDelta(t, 5.0, edge.Length(), board.EpsCoord)
}
