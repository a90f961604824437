package stage

import "fmt"

// Driver walks an ordered list of stages, matching spec.md §5: "stages run
// in the declared order... the top-level driver calls step() repeatedly
// until solved or failed." Suspension points are simply a Run call
// returning; between steps Run hands each stage the Driver's Visualizer,
// which is where a streaming UI receives its frames.
type Driver struct {
	visualizer Visualizer
	maxSteps   int
	reports    []Report
}

// Report is one stage's outcome as recorded by the Driver.
type Report struct {
	Name  string
	Stats Stats
	Err   error
}

// NewDriver returns a Driver with the given Visualizer (may be nil, which
// is treated as NoopVisualizer) and per-stage Step() budget.
func NewDriver(v Visualizer, maxStepsPerStage int) *Driver {
	if v == nil {
		v = NoopVisualizer{}
	}
	if maxStepsPerStage <= 0 {
		maxStepsPerStage = 1_000_000
	}

	return &Driver{visualizer: v, maxSteps: maxStepsPerStage}
}

// Run drives s to completion (Solved() or Failed()), or until the Driver's
// step budget is exhausted, in which case ErrIterationBudgetExceeded is
// returned. name is used only for reporting and visualization frames.
func (d *Driver) Run(name string, s Stage) error {
	var err error
	steps := 0
	for !s.Solved() && !s.Failed() {
		if steps >= d.maxSteps {
			err = fmt.Errorf("%w: stage %q after %d steps", ErrIterationBudgetExceeded, name, steps)

			break
		}
		if stepErr := s.Step(); stepErr != nil {
			err = stepErr

			break
		}
		steps++
		s.Visualize(d.visualizer)
	}
	if err == nil && s.Failed() {
		err = s.Err()
	}
	d.reports = append(d.reports, Report{Name: name, Stats: s.Stats(), Err: err})

	return err
}

// Reports returns every Report recorded by prior Run calls, in order.
func (d *Driver) Reports() []Report {
	out := make([]Report, len(d.reports))
	copy(out, d.reports)

	return out
}
