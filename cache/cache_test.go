package cache_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/cache"
	"github.com/stretchr/testify/assert"
)

func TestMemory_GetSetRoundTrip(t *testing.T) {
	m := cache.NewMemory()
	_, ok := m.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Misses())

	m.Set("x", []byte("hello"))
	v, ok := m.Get("x")
	assert.True(t, ok)
	assert.Equal(t, []byte("hello"), v)
	assert.Equal(t, 1, m.Hits())
}

func TestIntraNodeSolverKey_IsStablePrefixed(t *testing.T) {
	key := cache.IntraNodeSolverKey(
		[]board.Point{{X: 1, Y: 2}},
		map[string]float64{"greedy": 0.5},
		[]int{0, 1},
		[]string{"net-a"},
	)
	assert.Contains(t, key, "intranode-solver:")
}

func TestIntraNodeSolverKey_IsOrderIndependent(t *testing.T) {
	a := cache.IntraNodeSolverKey(
		[]board.Point{{X: 1, Y: 2}},
		map[string]float64{"greedy": 0.5, "penalty": 1.0},
		[]int{1, 0},
		[]string{"net-b", "net-a"},
	)
	b := cache.IntraNodeSolverKey(
		[]board.Point{{X: 1, Y: 2}},
		map[string]float64{"penalty": 1.0, "greedy": 0.5},
		[]int{0, 1},
		[]string{"net-a", "net-b"},
	)
	assert.Equal(t, a, b)
}

func TestIntraNodeSolverKey_QuantizesNearbyCoordinates(t *testing.T) {
	a := cache.IntraNodeSolverKey([]board.Point{{X: 1.0001, Y: 2}}, nil, nil, nil)
	b := cache.IntraNodeSolverKey([]board.Point{{X: 1.0002, Y: 2}}, nil, nil, nil)
	assert.Equal(t, a, b)
}

func TestIntraNodeSolverKey_DiffersForDifferentInputs(t *testing.T) {
	a := cache.IntraNodeSolverKey([]board.Point{{X: 1, Y: 2}}, nil, nil, nil)
	b := cache.IntraNodeSolverKey([]board.Point{{X: 5, Y: 2}}, nil, nil, nil)
	assert.NotEqual(t, a, b)
}
