package meshbuilder

import (
	"fmt"
	"math"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
)

// Build runs the full MeshBuilder algorithm of spec.md §4.2 in one shot
// and returns the resulting capacity mesh. Stage wraps this for
// incremental use; Build itself is exposed directly for callers (and
// tests) that don't need step-wise progress.
func Build(b board.Board, cfg Config) (*meshgraph.Graph, error) {
	if cfg.TargetMinCapacity < 1 {
		cfg.TargetMinCapacity = 1
	}
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 12
	}
	shorterSpan := math.Min(b.Bounds.Width(), b.Bounds.Height())
	if cfg.TargetCellSize <= 0 {
		cfg.TargetCellSize = shorterSpan / 32
		if cfg.TargetCellSize < b.MinTraceWidth*4 {
			cfg.TargetCellSize = b.MinTraceWidth * 4
		}
	}
	baseDepth := cfg.CapacityDepth
	if baseDepth <= 0 {
		baseDepth = TunedDepth(shorterSpan, b.MinTraceWidth, cfg.TargetMinCapacity)
	}

	targets, offBoard := collectTargets(b)

	var leaves []board.Rect
	worklist := []cellTask{{rect: b.Bounds, depth: 0}}
	for len(worklist) > 0 {
		task := worklist[0]
		worklist = worklist[1:]

		if shouldSplit(task, b, cfg, baseDepth, targets) {
			for _, child := range quarter(task.rect) {
				worklist = append(worklist, cellTask{rect: child, depth: task.depth + 1})
			}

			continue
		}
		leaves = append(leaves, task.rect)
	}
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}

	g := meshgraph.NewGraph()
	for i, rect := range leaves {
		node, drop := buildNode(fmt.Sprintf("n%d", i+1), rect, b, targets, offBoard)
		if drop {
			continue
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("meshbuilder: %w", err)
		}
	}

	return g, nil
}

func collectTargets(b board.Board) (onBoard []target, offBoard []target) {
	for _, c := range b.Connections {
		root := c.EffectiveRoot()
		for _, p := range c.PointsToConnect {
			if p.OffBoard || !b.Bounds.Contains(p.Point) {
				offBoard = append(offBoard, target{pt: clampToBounds(p.Point, b.Bounds), rootNet: root})

				continue
			}
			onBoard = append(onBoard, target{pt: p.Point, rootNet: root})
		}
	}

	return onBoard, offBoard
}

func clampToBounds(p board.Point, r board.Rect) board.Point {
	x := math.Max(r.MinX, math.Min(r.MaxX, p.X))
	y := math.Max(r.MinY, math.Min(r.MaxY, p.Y))

	return board.Point{X: x, Y: y}
}

func quarter(r board.Rect) [4]board.Rect {
	midX := (r.MinX + r.MaxX) / 2
	midY := (r.MinY + r.MaxY) / 2

	return [4]board.Rect{
		{MinX: r.MinX, MinY: r.MinY, MaxX: midX, MaxY: midY},
		{MinX: midX, MinY: r.MinY, MaxX: r.MaxX, MaxY: midY},
		{MinX: r.MinX, MinY: midY, MaxX: midX, MaxY: r.MaxY},
		{MinX: midX, MinY: midY, MaxX: r.MaxX, MaxY: r.MaxY},
	}
}

func shouldSplit(task cellTask, b board.Board, cfg Config, baseDepth int, targets []target) bool {
	if task.depth >= cfg.MaxDepth {
		return false
	}
	// Baseline uniform subdivision to the tuned capacity depth.
	if task.depth < baseDepth {
		return true
	}
	side := math.Min(task.rect.Width(), task.rect.Height())

	// Rule 1: overlaps an obstacle and is larger than that obstacle's
	// bounding box on both axes.
	for _, o := range b.Obstacles {
		if task.rect.Intersects(o.Rect) && task.rect.Width() > o.Rect.Width() && task.rect.Height() > o.Rect.Height() {
			return true
		}
	}

	// Rule 2: contains a connection endpoint and is still coarser than
	// the target cell size.
	if side > cfg.TargetCellSize {
		for _, t := range targets {
			if task.rect.Contains(t.pt) {
				return true
			}
		}
	}

	// Rule 3: touches the board outline boundary and is still coarser
	// than the target cell size.
	if side > cfg.TargetCellSize && touchesOutline(task.rect, b.Bounds) {
		return true
	}

	return false
}

func touchesOutline(r, bounds board.Rect) bool {
	return board.EqualCoord(r.MinX, bounds.MinX) || board.EqualCoord(r.MaxX, bounds.MaxX) ||
		board.EqualCoord(r.MinY, bounds.MinY) || board.EqualCoord(r.MaxY, bounds.MaxY)
}

func buildNode(id string, rect board.Rect, b board.Board, targets, offBoard []target) (*meshgraph.CapacityNode, bool) {
	n := &meshgraph.CapacityNode{
		ID:         id,
		Rect:       rect,
		AvailableZ: board.AllLayers(b.LayerCount),
	}

	for _, t := range targets {
		if rect.Contains(t.pt) {
			n.ContainsTarget = true
			n.TargetRootNet = t.rootNet
		}
	}
	for _, t := range offBoard {
		if rect.Contains(t.pt) {
			n.ContainsTarget = true
			n.OffBoard = true
			n.TargetRootNet = t.rootNet
		}
	}

	fullyInsideUnconnected := false
	for _, o := range b.Obstacles {
		if !rect.Intersects(o.Rect) {
			continue
		}
		n.ContainsObstacle = true
		if n.ContainsTarget && o.AllowsNet(n.TargetRootNet) {
			continue // obstacle electrically connected to this cell's net: does not block it
		}
		for _, z := range o.Layers.Slice() {
			n.AvailableZ = n.AvailableZ.Remove(z)
		}
		if o.Rect.ContainsRect(rect) {
			fullyInsideUnconnected = true
		}
	}

	minSide := math.Min(rect.Width(), rect.Height())
	n.Capacity = TunedTotalCapacity1(minSide, b.MinTraceWidth)

	drop := fullyInsideUnconnected && !n.ContainsTarget

	return n, drop
}
