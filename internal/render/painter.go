//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"wireworld/internal/core"
)

// GridPainter keeps an offscreen image with one pixel per cell and scales it
// onto the screen.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette

	cellW, cellH float64
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette, cellW: 1, cellH: 1}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Draw uploads the grid into the offscreen image. It implements core.Sink.
func (gp *GridPainter) Draw(g *core.Grid, cellW, cellH float64) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	fillCellsRGBA(gp.buf, g, gp.palette)
	gp.img.WritePixels(gp.buf)
	gp.cellW, gp.cellH = cellW, cellH
}

// Blit draws the last uploaded grid onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gp.cellW, gp.cellH)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
