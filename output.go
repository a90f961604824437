package autoroute

import (
	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/routestitch"
)

// RouteElement is one step of a trace's route, per spec.md §6's output
// shape: a wire point, a via, or a jumper. Only the fields relevant to
// Type are populated.
type RouteElement struct {
	RouteType string // "wire" | "via" | "jumper"

	// wire
	X, Y   float64
	Width  float64
	Layer  string

	// via
	FromLayer, ToLayer string

	// jumper
	Start, End board.Point
	Footprint  float64
}

// Trace is one connection's final, simplified route.
type Trace struct {
	Type           string // always "pcb_trace"
	TraceID        string
	ConnectionName string
	Route          []RouteElement
}

// Output is the top-level result of Route.
type Output struct {
	Traces []Trace
}

// buildTrace converts one simplified routestitch.Route into its output
// shape: consecutive same-z points become wire steps, a z change becomes
// a via step at the shared (x,y), and every jumper recorded against the
// route's connection becomes a jumper step.
func buildTrace(traceID string, route routestitch.Route, minTraceWidth, jumperFootprint float64, layerCount int) Trace {
	t := Trace{Type: "pcb_trace", TraceID: traceID, ConnectionName: route.ConnectionName}

	for i, p := range route.Points {
		if i > 0 && route.Points[i-1].Z != p.Z {
			t.Route = append(t.Route, RouteElement{
				RouteType: "via",
				X:         p.X, Y: p.Y,
				FromLayer: board.LayerName(route.Points[i-1].Z, layerCount),
				ToLayer:   board.LayerName(p.Z, layerCount),
			})

			continue
		}
		t.Route = append(t.Route, RouteElement{
			RouteType: "wire",
			X:         p.X, Y: p.Y,
			Width: minTraceWidth,
			Layer: board.LayerName(p.Z, layerCount),
		})
	}

	for _, j := range route.Jumpers {
		t.Route = append(t.Route, RouteElement{
			RouteType: "jumper",
			Start:     j.Start, End: j.End,
			Footprint: jumperFootprint,
		})
	}

	return t
}
