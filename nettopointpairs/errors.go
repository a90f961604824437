package nettopointpairs

import "errors"

// ErrTooFewEndpoints indicates a net with fewer than 2 reachable
// endpoints; spec.md §4.1 requires this be reported as a hard (fatal)
// error.
var ErrTooFewEndpoints = errors.New("nettopointpairs: net has fewer than 2 reachable endpoints")
