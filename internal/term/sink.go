package term

import (
	"github.com/gdamore/tcell/v2"

	"wireworld/internal/core"
	"wireworld/internal/render"
)

// Sink draws the grid into a tcell screen as coloured blocks. A cell of
// cellW×cellH covers that many columns and rows.
type Sink struct {
	screen  tcell.Screen
	palette render.Palette
	status  func() string
}

// NewSink returns a sink drawing to screen. status, if non-nil, supplies the
// footer printed below the grid.
func NewSink(screen tcell.Screen, palette render.Palette, status func() string) *Sink {
	return &Sink{screen: screen, palette: palette, status: status}
}

func (s *Sink) style(state core.CellState, i, j int) tcell.Style {
	c := s.palette.Color(state, i, j)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Draw implements core.Sink.
func (s *Sink) Draw(g *core.Grid, cellW, cellH float64) {
	cw, ch := int(cellW), int(cellH)
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	sw, sh := s.screen.Size()
	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			st := s.style(g.At(i, j), i, j)
			for dy := 0; dy < ch; dy++ {
				y := j*ch + dy
				if y >= sh {
					break
				}
				for dx := 0; dx < cw; dx++ {
					x := i*cw + dx
					if x >= sw {
						break
					}
					s.screen.SetContent(x, y, ' ', nil, st)
				}
			}
		}
	}
	if s.status != nil {
		s.drawStatus(g.H*ch, sw, sh)
	}
	s.screen.Show()
}

func (s *Sink) drawStatus(y, width, height int) {
	if y >= height {
		return
	}
	line := []rune(s.status())
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		s.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
	}
}
