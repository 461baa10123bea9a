//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"wireworld/internal/core"
	"wireworld/internal/edit"
	"wireworld/internal/input"
)

// Overlay highlights the tile under the cursor.
type Overlay struct {
	size     core.Size
	resolver input.Resolver
	pixel    *ebiten.Image
	hover    edit.Tile
	visible  bool
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, resolver input.Resolver) *Overlay {
	o := &Overlay{size: size, resolver: resolver}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered tile.
func (o *Overlay) Update() {
	mx, my := ebiten.CursorPosition()
	o.hover = o.resolver.Tile(float64(mx), float64(my))
	o.visible = o.hover.I >= 0 && o.hover.I < o.size.W && o.hover.J >= 0 && o.hover.J < o.size.H
}

// Draw renders the highlight onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(o.resolver.CellW, o.resolver.CellH)
	op.GeoM.Translate(float64(o.hover.I)*o.resolver.CellW, float64(o.hover.J)*o.resolver.CellH)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0x40})
	screen.DrawImage(o.pixel, op)
}
