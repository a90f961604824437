package visualize

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/stage"
)

// Terminal renders stage.Visualizer frames to a tcell screen.
type Terminal struct {
	screen tcell.Screen
	frame  int
}

// New opens a terminal visualizer. If stdout is not a TTY, it returns
// stage.NoopVisualizer instead of failing, so a non-interactive caller
// (tests, CI, a batch run) never has to special-case this.
func New() (stage.Visualizer, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return stage.NoopVisualizer{}, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()

	return &Terminal{screen: screen}, nil
}

// Close releases the underlying screen.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Frame implements stage.Visualizer.
func (t *Terminal) Frame(stageName string, payload any) {
	t.frame++
	t.screen.Clear()
	t.drawHeader(stageName)

	if g, ok := payload.(*meshgraph.Graph); ok {
		t.drawGraph(g)
	}

	t.screen.Show()
}

func (t *Terminal) drawHeader(stageName string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	text := stageName
	for i, r := range text {
		t.screen.SetContent(i, 0, r, nil, style)
	}
}
