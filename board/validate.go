package board

import "fmt"

// Validate checks the board for the "invalid input" failure class of
// spec.md §7: a degenerate board, an invalid layer/trace configuration, a
// connection with fewer than 2 reachable endpoints, or an obstacle that
// fully occludes a target on every allowed layer. These are fatal: no
// routes can be produced.
func (b Board) Validate() error {
	if b.Bounds.Degenerate() {
		return ErrDegenerateBoard
	}
	if b.LayerCount < 1 {
		return ErrInvalidLayerCount
	}
	if b.MinTraceWidth <= 0 {
		return ErrInvalidTraceWidth
	}

	for _, c := range b.Connections {
		if c.Name == "" {
			return ErrEmptyConnectionName
		}
		if err := b.validateConnection(c); err != nil {
			return err
		}
	}

	return nil
}

func (b Board) validateConnection(c Connection) error {
	reachable := 0
	for _, p := range c.PointsToConnect {
		if p.OffBoard {
			reachable++

			continue
		}
		if !b.Bounds.Contains(p.Point) {
			continue
		}
		if b.pointFullyOccluded(p) {
			return fmt.Errorf("%w: connection %q at (%.3f,%.3f)", ErrObstacleOccludesTarget, c.Name, p.X, p.Y)
		}
		reachable++
	}
	if reachable < 2 {
		return fmt.Errorf("%w: connection %q has %d reachable point(s)", ErrUnreachableEndpoints, c.Name, reachable)
	}

	return nil
}

// pointFullyOccluded reports whether every layer p is allowed to use is
// blocked by some obstacle overlapping p, and that obstacle does not admit
// the point's (as yet undetermined) net. Since the net-to-obstacle
// connectivity is keyed by root connection name and a raw ConnectionPoint
// carries no net identity of its own, this only rejects points whose
// allowed layers are a subset of unconditionally-blocking obstacles (no
// ConnectedTo entries at all).
func (b Board) pointFullyOccluded(p ConnectionPoint) bool {
	remaining := p.AllowedLayers
	if remaining.Empty() {
		remaining = AllLayers(b.LayerCount)
	}
	for _, o := range b.Obstacles {
		if len(o.ConnectedTo) > 0 {
			continue // conditionally passable; cannot prove occlusion here
		}
		if !o.Rect.Contains(p.Point) {
			continue
		}
		for _, z := range o.Layers.Slice() {
			remaining = remaining.Remove(z)
		}
	}

	return remaining.Empty()
}
