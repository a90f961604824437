package tracesimplify_test

import (
	"testing"

	"github.com/pcbroute/autoroute/highdensityrouting"
	"github.com/pcbroute/autoroute/routestitch"
	"github.com/pcbroute/autoroute/tracesimplify"
	"github.com/stretchr/testify/assert"
)

func pt(x, y float64, z int) highdensityrouting.Point3 { return highdensityrouting.Point3{X: x, Y: y, Z: z} }

func TestSimplify_MergesCollinearSegments(t *testing.T) {
	route := routestitch.Route{
		ConnectionName: "c",
		Points:         []highdensityrouting.Point3{pt(0, 0, 0), pt(5, 0, 0), pt(10, 0, 0)},
	}
	out := tracesimplify.Simplify(route, tracesimplify.DefaultConfig())
	assert.Equal(t, []highdensityrouting.Point3{pt(0, 0, 0), pt(10, 0, 0)}, out.Points)
}

func TestSimplify_KeepsTurningPoint(t *testing.T) {
	route := routestitch.Route{
		ConnectionName: "c",
		Points:         []highdensityrouting.Point3{pt(0, 0, 0), pt(5, 0, 0), pt(5, 5, 0)},
	}
	out := tracesimplify.Simplify(route, tracesimplify.DefaultConfig())
	assert.Equal(t, route.Points, out.Points)
}

func TestSimplify_RemovesRedundantViaRoundTrip(t *testing.T) {
	route := routestitch.Route{
		ConnectionName: "c",
		Points: []highdensityrouting.Point3{
			pt(0, 0, 0), pt(5, 0, 0),
			pt(5, 0, 1), // via down
			pt(5, 0, 0), // via back up: round trip contributes nothing
			pt(10, 0, 0),
		},
	}
	out := tracesimplify.Simplify(route, tracesimplify.DefaultConfig())
	assert.Equal(t, []highdensityrouting.Point3{pt(0, 0, 0), pt(10, 0, 0)}, out.Points)
}

func TestSimplify_KeepsGenuineVia(t *testing.T) {
	route := routestitch.Route{
		ConnectionName: "c",
		Points: []highdensityrouting.Point3{
			pt(0, 0, 0), pt(5, 0, 0), pt(5, 0, 1), pt(10, 0, 1),
		},
	}
	out := tracesimplify.Simplify(route, tracesimplify.DefaultConfig())
	assert.Equal(t, route.Points, out.Points)
}

func TestSimplify_IsIdempotent(t *testing.T) {
	route := routestitch.Route{
		ConnectionName: "c",
		Points: []highdensityrouting.Point3{
			pt(0, 0, 0), pt(3, 0, 0), pt(5, 0, 0),
			pt(5, 0, 1), pt(5, 0, 0),
			pt(8, 0, 0), pt(10, 0, 0),
		},
	}
	cfg := tracesimplify.DefaultConfig()
	once := tracesimplify.Simplify(route, cfg)
	twice := tracesimplify.Simplify(once, cfg)
	assert.Equal(t, once.Points, twice.Points)
}
