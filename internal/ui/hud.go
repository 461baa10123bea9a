//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wireworld/internal/core"
)

// HUD prints the status line and, on request, the controls.
type HUD struct {
	sim      core.Sim
	running  func() bool
	showHelp bool
	status   string
}

// NewHUD constructs a HUD for sim. running reports the loop's run flag.
func NewHUD(sim core.Sim, running func() bool) *HUD {
	return &HUD{sim: sim, running: running}
}

// Update refreshes the cached status line and handles the help toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showHelp = !h.showHelp
	}
	h.status = StatusLine(h.sim, h.running())
}

// Draw renders the HUD text in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, h.status, 4, 2)
	if h.showHelp {
		ebitenutil.DebugPrintAt(screen, HelpText, 4, 18)
	}
}
