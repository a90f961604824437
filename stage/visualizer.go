package stage

// Visualizer is the capability a Stage renders its progress to between
// Step() calls. Spec.md §1 and §5 place visualization/debug rendering out
// of scope, "described only by its interface"; Visualizer is that
// interface. internal/visualize provides a terminal implementation; tests
// and library callers that don't want rendering pass nil or NoopVisualizer.
type Visualizer interface {
	// Frame receives a stage name and an opaque, stage-defined snapshot
	// value (e.g. *meshgraph.Graph, or a stage-local progress struct). A
	// Visualizer that does not recognize the payload type should ignore
	// it rather than panic.
	Frame(stageName string, payload any)
}

// NoopVisualizer discards every frame. It is the default when a Driver is
// constructed without an explicit Visualizer.
type NoopVisualizer struct{}

// Frame implements Visualizer by doing nothing.
func (NoopVisualizer) Frame(string, any) {}
