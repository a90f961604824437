package capacitypathing_test

import (
	"testing"

	"github.com/pcbroute/autoroute/capacitypathing"
	"github.com/stretchr/testify/assert"
)

func TestOrderRequests_LongestFirst(t *testing.T) {
	reqs := []capacitypathing.Request{
		{ConnectionName: "short", StraightLine: 2},
		{ConnectionName: "long", StraightLine: 10},
		{ConnectionName: "medium", StraightLine: 5},
	}
	ordered := capacitypathing.OrderRequests(reqs)
	names := make([]string, len(ordered))
	for i, r := range ordered {
		names[i] = r.ConnectionName
	}
	assert.Equal(t, []string{"long", "medium", "short"}, names)
}

func TestOrderRequests_TiesBreakByName(t *testing.T) {
	reqs := []capacitypathing.Request{
		{ConnectionName: "b", StraightLine: 5},
		{ConnectionName: "a", StraightLine: 5},
	}
	ordered := capacitypathing.OrderRequests(reqs)
	assert.Equal(t, "a", ordered[0].ConnectionName)
	assert.Equal(t, "b", ordered[1].ConnectionName)
}

func TestOrderRequests_DoesNotMutateInput(t *testing.T) {
	reqs := []capacitypathing.Request{
		{ConnectionName: "x", StraightLine: 1},
		{ConnectionName: "y", StraightLine: 2},
	}
	_ = capacitypathing.OrderRequests(reqs)
	assert.Equal(t, "x", reqs[0].ConnectionName)
}
