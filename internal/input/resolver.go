package input

import (
	"math"

	"wireworld/internal/edit"
)

// Resolver maps surface coordinates to grid tiles. Coordinates outside the
// grid produce tiles outside the grid; they are never clamped.
type Resolver struct {
	CellW, CellH float64
}

// NewResolver derives the cell size from a surface of surfaceW×surfaceH
// pixels showing a gridW×gridH grid.
func NewResolver(surfaceW, surfaceH, gridW, gridH int) Resolver {
	return Resolver{
		CellW: float64(surfaceW) / float64(gridW),
		CellH: float64(surfaceH) / float64(gridH),
	}
}

// Tile returns the tile containing the point (x, y).
func (r Resolver) Tile(x, y float64) edit.Tile {
	return edit.Tile{
		I: int(math.Floor(x / r.CellW)),
		J: int(math.Floor(y / r.CellH)),
	}
}

// Tracker turns sampled button state into edges for an edit.Controller.
// Frontends that only report which buttons are currently held (polling in
// ebiten, button masks in tcell) feed each sample through Update.
type Tracker struct {
	ctrl    *edit.Controller
	held    bool
	button  edit.Button
	last    edit.Tile
	hasLast bool
}

// NewTracker returns a Tracker feeding ctrl.
func NewTracker(ctrl *edit.Controller) *Tracker {
	return &Tracker{ctrl: ctrl}
}

// Update reports the pointer at tile t with button b held, or with no
// button held when down is false.
func (tr *Tracker) Update(t edit.Tile, b edit.Button, down bool) {
	switch {
	case down && !tr.held:
		tr.held, tr.button = true, b
		tr.ctrl.Press(b, t)
	case down && b != tr.button:
		// A different button replaced the held one: release, then press.
		tr.ctrl.Release()
		tr.button = b
		tr.ctrl.Press(b, t)
	case down:
		if !tr.hasLast || t != tr.last {
			tr.ctrl.Move(t)
		}
	case tr.held:
		tr.held = false
		tr.ctrl.Release()
	}
	tr.last, tr.hasLast = t, true
}

// Wheel forwards a vertical wheel delta. Positive deltas scroll up.
func (tr *Tracker) Wheel(dy float64) {
	switch {
	case dy > 0:
		tr.ctrl.WheelUp()
	case dy < 0:
		tr.ctrl.WheelDown()
	}
}
