package visualize

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pcbroute/autoroute/board"
	"github.com/pcbroute/autoroute/meshgraph"
)

// drawGraph renders g's nodes as a congestion-shaded grid scaled to fit
// the screen, below the header row.
func (t *Terminal) drawGraph(g *meshgraph.Graph) {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return
	}

	bounds, ok := boardBounds(g, ids)
	if !ok {
		return
	}

	width, height := t.screen.Size()
	height-- // reserve the header row
	if width <= 0 || height <= 0 {
		return
	}

	for _, id := range ids {
		node := g.MustNode(id)
		style := tcell.StyleDefault.Background(congestionColor(node.CongestionRatio()))
		if node.ContainsObstacle {
			style = tcell.StyleDefault.Background(tcell.ColorBlack)
		}

		minCol, maxCol := scaleRange(node.Rect.MinX, node.Rect.MaxX, bounds.MinX, bounds.MaxX, width)
		minRow, maxRow := scaleRange(node.Rect.MinY, node.Rect.MaxY, bounds.MinY, bounds.MaxY, height)
		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				t.screen.SetContent(col, row+1, ' ', nil, style)
			}
		}
	}
}

func boardBounds(g *meshgraph.Graph, ids []string) (board.Rect, bool) {
	if len(ids) == 0 {
		return board.Rect{}, false
	}
	first := g.MustNode(ids[0]).Rect
	bounds := first
	for _, id := range ids[1:] {
		r := g.MustNode(id).Rect
		if r.MinX < bounds.MinX {
			bounds.MinX = r.MinX
		}
		if r.MinY < bounds.MinY {
			bounds.MinY = r.MinY
		}
		if r.MaxX > bounds.MaxX {
			bounds.MaxX = r.MaxX
		}
		if r.MaxY > bounds.MaxY {
			bounds.MaxY = r.MaxY
		}
	}

	return bounds, true
}

// scaleRange maps [lo,hi] within [loBound,hiBound] onto a [0,cells)
// column/row range.
func scaleRange(lo, hi, loBound, hiBound float64, cells int) (int, int) {
	span := hiBound - loBound
	if span <= 0 {
		return 0, 0
	}

	start := int((lo - loBound) / span * float64(cells))
	end := int((hi-loBound)/span*float64(cells)) - 1
	if end < start {
		end = start
	}
	if end >= cells {
		end = cells - 1
	}
	if start < 0 {
		start = 0
	}

	return start, end
}
