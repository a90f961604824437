package unravel_test

import (
	"testing"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/unravel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_RunsToCompletion(t *testing.T) {
	g, _ := twoNodeGraph(t)
	cfg := unravel.DefaultConfig()
	cfg.MaxSectionAttempts = 2
	reqs := []unravel.Request{
		{ConnectionName: "c1", StartNodeID: "a", GoalNodeID: "b", StartPoint: board.Point{X: 1, Y: 5}, GoalPoint: board.Point{X: 9, Y: 5}, StraightLine: 8},
	}
	s := unravel.NewStage(g, reqs, cfg)

	for i := 0; i < 50 && !s.Solved(); i++ {
		require.NoError(t, s.Step())
	}
	assert.True(t, s.Solved())
	assert.False(t, s.Failed())
	results := s.Results()
	require.Len(t, results, 1)
	assert.False(t, results[0].Failed)
}

func TestSolver_BoardScoreNonNegative(t *testing.T) {
	g, _ := twoNodeGraph(t)
	cfg := unravel.DefaultConfig()
	s := unravel.NewSolver(g, cfg)
	reqs := []unravel.Request{
		{ConnectionName: "c1", StartNodeID: "a", GoalNodeID: "b", StartPoint: board.Point{X: 1, Y: 5}, GoalPoint: board.Point{X: 9, Y: 5}, StraightLine: 8},
	}
	s.RouteAll(reqs)
	assert.GreaterOrEqual(t, s.BoardScore(), 0.0)
}
