// Package term runs WireWorld in a terminal using tcell.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"wireworld/internal/core"
	"wireworld/internal/edit"
	"wireworld/internal/input"
	"wireworld/internal/loop"
	"wireworld/internal/render"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/ui"
)

const (
	// A cell is two columns wide so it looks roughly square.
	cellCols = 2
	cellRows = 1

	frameInterval = 33 * time.Millisecond
)

// Options configures a terminal session.
type Options struct {
	Width   int
	Height  int
	TPS     int
	Pattern string
	Paused  bool
}

// Session wires a world, its loop and the edit controller to a tcell screen.
type Session struct {
	screen  tcell.Screen
	world   *wireworld.World
	loop    *loop.Loop
	ctrl    *edit.Controller
	tracker *input.Tracker
	res     input.Resolver
	quit    context.CancelFunc
}

// NewSession builds a session on an initialised screen.
func NewSession(screen tcell.Screen, opts Options) (*Session, error) {
	world, err := wireworld.NewWithConfig(wireworld.Config{Width: opts.Width, Height: opts.Height, Pattern: opts.Pattern})
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	s := &Session{
		screen: screen,
		world:  world,
		res:    input.Resolver{CellW: cellCols, CellH: cellRows},
	}
	s.loop = loop.New(world, nil, core.NewFixedStep(opts.TPS))
	s.loop.SetCellSize(cellCols, cellRows)
	s.loop.SetSink(NewSink(screen, render.DefaultPalette(), func() string {
		return ui.StatusLine(world, s.loop.Running())
	}))
	s.ctrl = edit.NewController(world, s.loop)
	s.tracker = input.NewTracker(s.ctrl)
	s.loop.SetRunning(!opts.Paused)
	return s, nil
}

// Loop returns the session's loop.
func (s *Session) Loop() *loop.Loop { return s.loop }

// World returns the session's world.
func (s *Session) World() *wireworld.World { return s.world }

// Run polls screen events and drives the loop until ctx is cancelled or the
// user quits. It returns nil on a user quit.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.quit = cancel

	s.screen.EnableMouse()
	defer s.screen.DisableMouse()

	commands := make(chan loop.Command, 64)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case commands <- func() { s.Handle(ev) }:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	err := s.loop.Run(ctx, ticker.C, commands)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Handle applies a single tcell event. It must run on the loop's goroutine.
func (s *Session) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Session) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		if s.quit != nil {
			s.quit()
		}
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q':
		if s.quit != nil {
			s.quit()
		}
	case ' ':
		s.ctrl.TertiaryPress()
	case 'c':
		s.ctrl.WheelUp()
	case 'x':
		s.ctrl.WheelDown()
	case 'n':
		s.loop.StepOnce()
	}
}

func (s *Session) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	tile := s.res.Tile(float64(x), float64(y))
	buttons := ev.Buttons()

	// Wheel events carry no button state, so they must not end a held press.
	switch {
	case buttons&tcell.WheelUp != 0:
		s.tracker.Wheel(1)
		return
	case buttons&tcell.WheelDown != 0:
		s.tracker.Wheel(-1)
		return
	}

	switch {
	case buttons&tcell.ButtonPrimary != 0:
		s.tracker.Update(tile, edit.Primary, true)
	case buttons&tcell.ButtonSecondary != 0:
		s.tracker.Update(tile, edit.Secondary, true)
	case buttons&tcell.ButtonMiddle != 0:
		s.tracker.Update(tile, edit.Tertiary, true)
	default:
		s.tracker.Update(tile, edit.Primary, false)
	}
}
