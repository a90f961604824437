package unravel

import "errors"

// Sentinel errors for port-point pathing.
var (
	// ErrStartNodeNotFound indicates a request names a start node absent
	// from the mesh graph.
	ErrStartNodeNotFound = errors.New("unravel: start node not found")

	// ErrGoalNodeNotFound indicates a request names a goal node absent from
	// the mesh graph.
	ErrGoalNodeNotFound = errors.New("unravel: goal node not found")

	// ErrNoPath indicates the bounded A* search exhausted its frontier or
	// its iteration budget without reaching the goal node. This is a
	// per-connection soft failure (spec.md §7); the pipeline continues.
	ErrNoPath = errors.New("unravel: no port-point path found within iteration budget")
)
