package stage

import "errors"

// ErrIterationBudgetExceeded is returned by a Driver run when a stage
// never reaches Solved() within its allotted Step() budget. Per spec.md
// §7 this is a soft failure at the pipeline level when the stage itself
// only partially completed but did not set its own Failed(); the Driver
// treats an exhausted budget as a stage failure to prevent an infinite
// Run loop.
var ErrIterationBudgetExceeded = errors.New("stage: iteration budget exceeded")

// Stage is the common interface every pipeline stage implements: an
// incremental state machine driven by repeated Step() calls until Solved()
// or Failed().
type Stage interface {
	// Step performs one bounded unit of work. It may return without the
	// stage being Solved(); the caller is expected to call Step again.
	// Step must never be called again after Solved() or Failed() report
	// true.
	Step() error

	// Solved reports whether the stage has completely produced its
	// output.
	Solved() bool

	// Failed reports whether the stage has given up fatally (spec.md §7
	// "Internal invariant violation"); the pipeline halts when this is
	// true. Recoverable per-connection failures never set this.
	Failed() bool

	// Err returns the fatal error that caused Failed() to become true, or
	// nil.
	Err() error

	// Stats returns a snapshot of the stage's bookkeeping so far.
	Stats() Stats

	// Visualize renders the stage's current state to v, if v is non-nil.
	// Stages that have nothing meaningful to show may no-op.
	Visualize(v Visualizer)
}

// Name identifies a pipeline stage for reporting purposes. A Stage
// implementation also exposes Name() string in practice; declared
// separately here to keep the core Stage interface minimal and to let
// Driver label stages without requiring every caller to implement it.
type Named interface {
	Name() string
}
