package autoroute

import (
	"github.com/pcbroute/autoroute/routestitch"
	"github.com/pcbroute/autoroute/segmenttopoint"
	"github.com/pcbroute/autoroute/stage"
)

// Report aggregates a completed (or partially completed) Route call:
// every stage's raw stats plus the soft-failure signals spec.md §7 calls
// out as non-fatal — board score, stitch-gap warnings and port-spacing
// overflows.
type Report struct {
	StageReports     []stage.Report
	BoardScore       float64
	GapWarnings      []routestitch.Warning
	SegmentOverflows []segmenttopoint.Overflow
}

// StageReport looks up one named stage's report, or the zero Report and
// false if that stage never ran (e.g. the pipeline halted earlier).
func (r Report) StageReport(name string) (stage.Report, bool) {
	for _, sr := range r.StageReports {
		if sr.Name == name {
			return sr, true
		}
	}

	return stage.Report{}, false
}
