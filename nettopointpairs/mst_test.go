package nettopointpairs_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/nettopointpairs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecomposeNet_ThreePointStar: the MST over (0,0), (10,0), (5,3)
// connects both (0,0) and (10,0) to (5,3), the two shorter edges (about
// 5.83 each), not the 10-long (0,0)-(10,0) edge.
func TestDecomposeNet_ThreePointStar(t *testing.T) {
	conn := board.Connection{
		Name: "netS3",
		PointsToConnect: []board.ConnectionPoint{
			{Point: board.Point{X: 0, Y: 0}},
			{Point: board.Point{X: 10, Y: 0}},
			{Point: board.Point{X: 5, Y: 3}},
		},
	}
	pairs, err := nettopointpairs.DecomposeNet(conn)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	for _, p := range pairs {
		require.Equal(t, "netS3", p.RootName)
		require.Len(t, p.PointsToConnect, 2)
		a, b := p.PointsToConnect[0].Point, p.PointsToConnect[1].Point
		// Neither MST edge should be the long (0,0)-(10,0) base.
		isBaseEdge := (a == (board.Point{X: 0, Y: 0}) && b == (board.Point{X: 10, Y: 0})) ||
			(a == (board.Point{X: 10, Y: 0}) && b == (board.Point{X: 0, Y: 0}))
		assert.False(t, isBaseEdge)
	}
}

func TestDecomposeNet_TwoPoints(t *testing.T) {
	conn := board.Connection{
		Name: "simple",
		PointsToConnect: []board.ConnectionPoint{
			{Point: board.Point{X: 0, Y: 0}},
			{Point: board.Point{X: 1, Y: 1}},
		},
	}
	pairs, err := nettopointpairs.DecomposeNet(conn)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "simple_mst1", pairs[0].Name)
	assert.Equal(t, "simple", pairs[0].RootName)
}

func TestDecomposeNet_TooFewPoints(t *testing.T) {
	conn := board.Connection{Name: "bad", PointsToConnect: []board.ConnectionPoint{{Point: board.Point{X: 0, Y: 0}}}}
	_, err := nettopointpairs.DecomposeNet(conn)
	require.ErrorIs(t, err, nettopointpairs.ErrTooFewEndpoints)
}
