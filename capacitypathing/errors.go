package capacitypathing

import "errors"

// Sentinel errors for capacity pathing.
var (
	// ErrStartNodeNotFound indicates a connection's start point projects
	// onto no mesh node.
	ErrStartNodeNotFound = errors.New("capacitypathing: start point has no containing mesh node")

	// ErrGoalNodeNotFound indicates a connection's end point projects onto
	// no mesh node.
	ErrGoalNodeNotFound = errors.New("capacitypathing: goal point has no containing mesh node")

	// ErrNoPath indicates the A* search exhausted its frontier without
	// reaching the goal node; this is a per-connection soft failure
	// (spec.md §7 "Capacity exhaustion"), never fatal to the pipeline.
	ErrNoPath = errors.New("capacitypathing: no path found")

	// ErrOverloadPermitted guards MAX_CAPACITY_FACTOR > 1 (spec.md §9 open
	// question): Config.Validate rejects it unless the caller explicitly
	// acknowledges overload.
	ErrOverloadPermitted = errors.New("capacitypathing: MAX_CAPACITY_FACTOR > 1 requires AcknowledgeOverload")
)
