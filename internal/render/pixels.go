package render

import (
	"image/color"

	"wireworld/internal/core"
)

// Palette assigns a colour to each cell state. Empty cells alternate between
// Empty and EmptyAlt in a checkerboard so the grid stays readable.
type Palette struct {
	Empty     color.RGBA
	EmptyAlt  color.RGBA
	Head      color.RGBA
	Tail      color.RGBA
	Conductor color.RGBA
}

// DefaultPalette returns the classic WireWorld colours.
func DefaultPalette() Palette {
	return Palette{
		Empty:     color.RGBA{A: 0xff},
		EmptyAlt:  color.RGBA{R: 0x0f, G: 0x0f, B: 0x0f, A: 0xff},
		Head:      color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff},
		Tail:      color.RGBA{R: 0xfa, G: 0x80, B: 0x72, A: 0xff},
		Conductor: color.RGBA{R: 0xff, G: 0xd7, A: 0xff},
	}
}

// Color returns the colour of a cell in state s at (i, j).
func (p Palette) Color(s core.CellState, i, j int) color.RGBA {
	switch s {
	case core.ElectronHead:
		return p.Head
	case core.ElectronTail:
		return p.Tail
	case core.Conductor:
		return p.Conductor
	}
	if (i+j)%2 == 0 {
		return p.EmptyAlt
	}
	return p.Empty
}

// fillCellsRGBA converts the grid into RGBA pixels in buf, one pixel per cell.
func fillCellsRGBA(buf []byte, g *core.Grid, p Palette) {
	cells := g.Cells()
	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			idx := g.Index(i, j)
			col := p.Color(cells[idx], i, j)
			base := idx * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
