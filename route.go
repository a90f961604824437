// Package autoroute wires the pipeline stages (NetToPointPairs through
// TraceSimplify) into the single entry point spec.md §6 describes as
// route(board, config) -> output.
package autoroute

import (
	"fmt"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/capacitypathing"
	"github.com/pcbroute/autoroute/deadendprune"
	"github.com/pcbroute/autoroute/edgebuilder"
	"github.com/pcbroute/autoroute/edgetoportsegments"
	"github.com/pcbroute/autoroute/highdensityrouting"
	"github.com/pcbroute/autoroute/meshbuilder"
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/nettopointpairs"
	"github.com/pcbroute/autoroute/routestitch"
	"github.com/pcbroute/autoroute/segmenttopoint"
	"github.com/pcbroute/autoroute/stage"
	"github.com/pcbroute/autoroute/tracesimplify"
	"github.com/pcbroute/autoroute/unravel"
)

// Route runs the full pipeline over b with cfg and returns the routed
// traces alongside a Report describing every stage's outcome. A non-nil
// error means either a stage hit a fatal internal invariant violation
// (the pipeline halts immediately) or the board-score gate rejected the
// result; in both cases the partial Report is still returned.
func Route(b board.Board, cfg Config) (Output, Report, error) {
	if err := b.Validate(); err != nil {
		return Output{}, Report{}, fmt.Errorf("autoroute: %w", err)
	}
	if err := cfg.CapacityPathing.Validate(); err != nil {
		return Output{}, Report{}, fmt.Errorf("autoroute: %w", err)
	}

	driver := stage.NewDriver(nil, cfg.MaxStepsPerStage)

	netStage := nettopointpairs.NewStage(b.Connections)
	if err := driver.Run(netStage.Name(), netStage); err != nil {
		return Output{}, collectReport(driver), err
	}
	pairs := netStage.PointPairs()

	meshCfg := cfg.Mesh
	if cfg.TargetMinCapacity > 0 {
		meshCfg.TargetMinCapacity = cfg.TargetMinCapacity
	}
	meshStage := meshbuilder.NewStage(b, meshCfg)
	if err := driver.Run(meshStage.Name(), meshStage); err != nil {
		return Output{}, collectReport(driver), err
	}
	g := meshStage.Mesh()

	edgeStage := edgebuilder.NewStage(g)
	if err := driver.Run(edgeStage.Name(), edgeStage); err != nil {
		return Output{}, collectReport(driver), err
	}

	pruneStage := deadendprune.NewStage(g)
	if err := driver.Run(pruneStage.Name(), pruneStage); err != nil {
		return Output{}, collectReport(driver), err
	}

	capReqs, err := buildCapacityRequests(g, pairs)
	if err != nil {
		return Output{}, collectReport(driver), fmt.Errorf("autoroute: %w", err)
	}
	capStage := capacitypathing.NewStage(g, capReqs, cfg.CapacityPathing)
	if err := driver.Run(capStage.Name(), capStage); err != nil {
		return Output{}, collectReport(driver), err
	}
	capResults := capStage.Results()

	crossStage := edgetoportsegments.NewStage(g, capResults)
	if err := driver.Run(crossStage.Name(), crossStage); err != nil {
		return Output{}, collectReport(driver), err
	}

	placeStage := segmenttopoint.NewStage(g, crossStage.Crossings(), cfg.SegmentToPoint)
	if err := driver.Run(placeStage.Name(), placeStage); err != nil {
		return Output{}, collectReport(driver), err
	}

	unravelReqs, err := buildUnravelRequests(g, pairs)
	if err != nil {
		return Output{}, collectReport(driver), fmt.Errorf("autoroute: %w", err)
	}
	unravelStage := unravel.NewStage(g, unravelReqs, cfg.Unravel)
	if err := driver.Run(unravelStage.Name(), unravelStage); err != nil {
		return Output{}, collectReport(driver), err
	}
	unravelResults := unravelStage.Results()

	hdrStage := highdensityrouting.NewStage(g, cfg.HighDensityRouting, cfg.Cache)
	if err := driver.Run(hdrStage.Name(), hdrStage); err != nil {
		return Output{}, collectReport(driver), err
	}

	sequences := buildStitchSequences(unravelResults)
	stitchStage := routestitch.NewStage(hdrStage.Results(), sequences, cfg.RouteStitch)
	if err := driver.Run(stitchStage.Name(), stitchStage); err != nil {
		return Output{}, collectReport(driver), err
	}

	simplifyStage := tracesimplify.NewStage(stitchStage.Routes(), cfg.TraceSimplify)
	if err := driver.Run(simplifyStage.Name(), simplifyStage); err != nil {
		return Output{}, collectReport(driver), err
	}

	report := collectReport(driver)
	report.BoardScore = unravelStage.Stats().BoardScore
	report.GapWarnings = stitchStage.Warnings()
	report.SegmentOverflows = placeStage.Overflows()

	out := buildOutput(simplifyStage.Routes(), b.MinTraceWidth, cfg.HighDensityRouting.JumperFootprint, b.LayerCount)

	if cfg.MinAllowedBoardScore > 0 && report.BoardScore > cfg.MinAllowedBoardScore {
		return out, report, ErrBoardScoreTooLow
	}

	return out, report, nil
}

// buildCapacityRequests resolves each decomposed connection's endpoints to
// containing mesh nodes for the node-level A* pass.
func buildCapacityRequests(g *meshgraph.Graph, pairs []board.Connection) ([]capacitypathing.Request, error) {
	reqs := make([]capacitypathing.Request, 0, len(pairs))
	for _, c := range pairs {
		if len(c.PointsToConnect) != 2 {
			continue
		}
		start, goal := c.PointsToConnect[0], c.PointsToConnect[1]
		startID, ok := capacitypathing.FindContainingNode(g, start.Point, c.EffectiveRoot())
		if !ok {
			return nil, fmt.Errorf("%w: connection %q", capacitypathing.ErrStartNodeNotFound, c.Name)
		}
		goalID, ok := capacitypathing.FindContainingNode(g, goal.Point, c.EffectiveRoot())
		if !ok {
			return nil, fmt.Errorf("%w: connection %q", capacitypathing.ErrGoalNodeNotFound, c.Name)
		}
		reqs = append(reqs, capacitypathing.Request{
			ConnectionName: c.Name,
			RootName:       c.EffectiveRoot(),
			StartNodeID:    startID,
			GoalNodeID:     goalID,
			StraightLine:   board.Dist(start.Point, goal.Point),
		})
	}

	return reqs, nil
}

// buildUnravelRequests mirrors buildCapacityRequests but also carries the
// true terminal points, since unravel.Search operates over the entire
// mesh graph at port-point granularity rather than a prior node sequence.
func buildUnravelRequests(g *meshgraph.Graph, pairs []board.Connection) ([]unravel.Request, error) {
	reqs := make([]unravel.Request, 0, len(pairs))
	for _, c := range pairs {
		if len(c.PointsToConnect) != 2 {
			continue
		}
		start, goal := c.PointsToConnect[0], c.PointsToConnect[1]
		startID, ok := capacitypathing.FindContainingNode(g, start.Point, c.EffectiveRoot())
		if !ok {
			return nil, fmt.Errorf("%w: connection %q", capacitypathing.ErrStartNodeNotFound, c.Name)
		}
		goalID, ok := capacitypathing.FindContainingNode(g, goal.Point, c.EffectiveRoot())
		if !ok {
			return nil, fmt.Errorf("%w: connection %q", capacitypathing.ErrGoalNodeNotFound, c.Name)
		}
		reqs = append(reqs, unravel.Request{
			ConnectionName: c.Name,
			RootName:       c.EffectiveRoot(),
			StartNodeID:    startID,
			GoalNodeID:     goalID,
			StartPoint:     start.Point,
			GoalPoint:      goal.Point,
			StraightLine:   board.Dist(start.Point, goal.Point),
		})
	}

	return reqs, nil
}

// buildStitchSequences converts unravel's per-connection node sequences
// into routestitch.Sequence, preferring unravel's order per spec.md §4.10
// since it alone records node revisits.
func buildStitchSequences(results []unravel.Result) []routestitch.Sequence {
	out := make([]routestitch.Sequence, 0, len(results))
	for _, r := range results {
		if r.Failed {
			continue
		}
		out = append(out, routestitch.Sequence{
			ConnectionName: r.ConnectionName,
			RootName:       r.RootName,
			NodeSequence:   r.NodeSequence,
		})
	}

	return out
}

// buildOutput assembles the final Output from the simplified routes.
func buildOutput(routes []routestitch.Route, minTraceWidth, jumperFootprint float64, layerCount int) Output {
	traces := make([]Trace, 0, len(routes))
	for i, r := range routes {
		id := fmt.Sprintf("trace-%d", i+1)
		traces = append(traces, buildTrace(id, r, minTraceWidth, jumperFootprint, layerCount))
	}

	return Output{Traces: traces}
}

func collectReport(d *stage.Driver) Report {
	return Report{StageReports: d.Reports()}
}
