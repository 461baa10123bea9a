package ui

import (
	"fmt"

	"wireworld/internal/core"
)

// StatusLine summarises the simulation for the HUD and the terminal footer.
func StatusLine(sim core.Sim, running bool) string {
	state := "paused"
	if running {
		state = "running"
	}
	c := sim.Grid().Census()
	return fmt.Sprintf("%s gen %d | wire %d head %d tail %d",
		state, sim.Generation(),
		c.Of(core.Conductor), c.Of(core.ElectronHead), c.Of(core.ElectronTail))
}

// HelpText lists the controls shared by both frontends.
const HelpText = "L: cycle/paint  R: erase  M/space: run  wheel up/c: clear electrons  wheel down/x: clear  n: step  q: quit"
