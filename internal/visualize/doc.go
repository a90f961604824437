// Package visualize implements the teacher's streaming-to-a-terminal
// capability (lixenwraith-vi-fighter's render package) against this
// repo's stage.Visualizer interface: a tcell screen that renders a
// Frame's payload — today, a *meshgraph.Graph — as a colored grid of
// mesh nodes, congestion-shaded via go-colorful.
//
// spec.md lists visualization as out of scope beyond its interface, but
// the teacher always carries a real terminal renderer rather than a
// stub, so this package exists to give stage.Visualizer a concrete,
// TTY-detecting implementation; non-interactive callers get
// stage.NoopVisualizer automatically.
package visualize
