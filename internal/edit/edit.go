// Package edit turns resolved pointer and wheel gestures into grid edits.
//
// Input collaborators resolve device coordinates into tiles and report
// presses, moves, releases and wheel notches. The Controller owns the
// click-versus-drag decision: a press cycles the pressed cell, and once the
// pointer has left the anchor tile every further move paints conductor.
package edit

import "wireworld/internal/core"

// Button identifies a pointer button.
type Button uint8

const (
	// Primary is usually the left button.
	Primary Button = iota
	// Secondary is usually the right button.
	Secondary
	// Tertiary is usually the middle button.
	Tertiary
)

// Tile is a grid coordinate. It may lie outside the grid.
type Tile struct {
	I, J int
}

// Board is the grid the controller edits. Grid must return the live current
// generation; Clear empties it.
type Board interface {
	Grid() *core.Grid
	Clear()
}

// Runner owns the run flag.
type Runner interface {
	Toggle() bool
}

// Session is the pointer bookkeeping for a single press.
type Session struct {
	PointerDown bool
	DragStarted bool
	Button      Button
	Anchor      Tile
	HasAnchor   bool
}

// Controller applies edit commands to a board.
type Controller struct {
	board   Board
	runner  Runner
	session Session
}

// NewController returns a controller editing board and toggling runner.
// runner may be nil, in which case TertiaryPress does nothing.
func NewController(board Board, runner Runner) *Controller {
	return &Controller{board: board, runner: runner}
}

// Session returns a copy of the current pointer bookkeeping.
func (c *Controller) Session() Session { return c.session }

// Press handles a button going down on tile t.
func (c *Controller) Press(b Button, t Tile) {
	switch b {
	case Primary:
		c.PrimaryPress(t)
	case Secondary:
		c.SecondaryPress(t)
	case Tertiary:
		c.TertiaryPress()
	}
}

// Move handles the pointer moving onto tile t. Moves are ignored unless a
// button is held. The first move away from the anchor only marks the press
// as a drag; later moves with the primary button held paint conductor.
func (c *Controller) Move(t Tile) {
	if !c.session.PointerDown {
		return
	}
	if !c.session.DragStarted {
		if !c.session.HasAnchor || t != c.session.Anchor {
			c.session.DragStarted = true
		}
		return
	}
	if c.session.Button == Primary {
		c.PrimaryDragOver(t)
	}
}

// PrimaryPress cycles the cell at t through conductor, head and tail and
// opens a press anchored at t.
func (c *Controller) PrimaryPress(t Tile) {
	c.begin(Primary, t)
	g := c.board.Grid()
	if !g.In(t.I, t.J) {
		return
	}
	g.Set(t.I, t.J, g.At(t.I, t.J).NextOnPrimary())
}

// PrimaryDragOver paints conductor at t when the current press has turned
// into a drag.
func (c *Controller) PrimaryDragOver(t Tile) {
	if !c.session.PointerDown || !c.session.DragStarted || c.session.Button != Primary {
		return
	}
	c.board.Grid().Set(t.I, t.J, core.Conductor)
}

// SecondaryPress erases the cell at t.
func (c *Controller) SecondaryPress(t Tile) {
	c.begin(Secondary, t)
	c.board.Grid().Set(t.I, t.J, core.Empty)
}

// TertiaryPress toggles the simulation between running and paused. It does
// not open a press.
func (c *Controller) TertiaryPress() {
	if c.runner != nil {
		c.runner.Toggle()
	}
}

// WheelUp turns every electron back into conductor, keeping the wiring.
func (c *Controller) WheelUp() {
	cells := c.board.Grid().Cells()
	for i, s := range cells {
		if s.IsElectron() {
			cells[i] = core.Conductor
		}
	}
}

// WheelDown empties the whole board.
func (c *Controller) WheelDown() {
	c.board.Clear()
}

// Release ends the current press.
func (c *Controller) Release() {
	c.session = Session{}
}

func (c *Controller) begin(b Button, t Tile) {
	c.session = Session{PointerDown: true, Button: b, Anchor: t, HasAnchor: true}
}
