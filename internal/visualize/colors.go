package visualize

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// congestionColor maps a 0..1 congestion ratio to a green-to-red hue,
// mirroring the teacher's gradient-by-opacity rendering technique
// (lixenwraith-vi-fighter/render.buildCleanerGradient) but varying hue
// instead of opacity since a terminal cell has no alpha channel.
func congestionColor(ratio float64) tcell.Color {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	hue := (1 - ratio) * 120 // 120=green at ratio 0, 0=red at ratio 1
	c := colorful.Hsv(hue, 0.65, 0.55)
	r, g, b := c.RGB255()

	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
