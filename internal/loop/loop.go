// Package loop drives a simulation one tick at a time.
//
// A Loop owns the run flag. Toggling it never starts a second driver:
// frontends with their own frame callback (ebiten) call Tick directly, and
// frontends without one (the terminal) hand the Loop a frame channel via Run.
// Either way there is at most one active driver.
package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"wireworld/internal/core"
)

// ErrLoopActive is returned by Run when another driver already owns the loop.
var ErrLoopActive = errors.New("loop already active")

// Pacer decides whether a running simulation steps on a given tick.
type Pacer interface {
	ShouldStep() bool
	Reset()
}

// Command is a unit of work run on the loop's goroutine between ticks.
type Command func()

// Loop steps a simulation while running and renders it every tick.
type Loop struct {
	sim   core.Sim
	sink  core.Sink
	pacer Pacer

	cellW, cellH float64

	running bool
	driving atomic.Bool
}

// New creates a paused loop for sim. sink and pacer may be nil.
func New(sim core.Sim, sink core.Sink, pacer Pacer) *Loop {
	return &Loop{sim: sim, sink: sink, pacer: pacer, cellW: 1, cellH: 1}
}

// SetCellSize sets the size passed to the sink for every cell.
func (l *Loop) SetCellSize(w, h float64) {
	l.cellW, l.cellH = w, h
}

// CellSize returns the size passed to the sink for every cell.
func (l *Loop) CellSize() (float64, float64) { return l.cellW, l.cellH }

// SetSink replaces the render sink.
func (l *Loop) SetSink(sink core.Sink) { l.sink = sink }

// Sim returns the driven simulation.
func (l *Loop) Sim() core.Sim { return l.sim }

// Running reports whether ticks advance the simulation.
func (l *Loop) Running() bool { return l.running }

// Active reports whether a tick driver currently owns the loop.
func (l *Loop) Active() bool { return l.driving.Load() }

// SetRunning sets the run flag. It never starts a driver: the active driver
// keeps ticking while paused and picks the change up on its next tick.
func (l *Loop) SetRunning(running bool) {
	if running == l.running {
		return
	}
	l.running = running
	if running && l.pacer != nil {
		l.pacer.Reset()
	}
}

// Toggle flips the run flag and returns the new value.
func (l *Loop) Toggle() bool {
	l.SetRunning(!l.running)
	return l.running
}

// Start claims the loop for a tick driver and reports whether this call did
// so. A frontend with its own frame callback calls Start once and Tick on
// every frame. Start on an active loop does nothing.
func (l *Loop) Start() bool {
	return l.driving.CompareAndSwap(false, true)
}

// Stop releases the loop so another driver may claim it.
func (l *Loop) Stop() { l.driving.Store(false) }

// Tick advances the simulation if running, then renders unconditionally so
// edits made while paused stay visible.
func (l *Loop) Tick() {
	if l.running && (l.pacer == nil || l.pacer.ShouldStep()) {
		l.sim.Step()
	}
	l.Render()
}

// StepOnce advances a paused simulation by a single generation.
func (l *Loop) StepOnce() {
	if l.running {
		return
	}
	l.sim.Step()
}

// Render draws the current generation to the sink.
func (l *Loop) Render() {
	if l.sink != nil {
		l.sink.Draw(l.sim.Grid(), l.cellW, l.cellH)
	}
}

// Run drives the loop until ctx is done: it ticks on every frame and runs
// every command on the calling goroutine, so the grid is never touched
// concurrently. Run returns ErrLoopActive if the loop already has a driver.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time, commands <-chan Command) error {
	if !l.Start() {
		return ErrLoopActive
	}
	defer l.Stop()

	l.Render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			cmd()
		case <-frames:
			l.Tick()
		}
	}
}
