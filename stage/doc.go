// Package stage defines the shared state-machine trait every pipeline
// stage implements, and the Driver that walks a list of stages in order.
//
// This replaces the source system's BaseSolver inheritance chain (spec.md
// §9 Design Notes: "model as a small trait/interface {step, solved,
// failed, visualize, stats} and keep each solver as a plain record"): Stage
// is that interface; the caller builds each Stage from the previous one's
// output and hands it to Driver.Run.
package stage
