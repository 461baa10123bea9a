package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"wireworld/internal/core"
	"wireworld/internal/render"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSinkDrawsCellsAndStatus(t *testing.T) {
	screen := newScreen(t, 10, 5)
	sink := NewSink(screen, render.DefaultPalette(), func() string { return "paused" })

	g := core.MustGrid(3, 2)
	g.Set(0, 0, core.Conductor)
	g.Set(1, 0, core.ElectronHead)
	g.Set(2, 1, core.ElectronTail)
	sink.Draw(g, cellCols, cellRows)

	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			want := sink.style(g.At(i, j), i, j)
			for dx := 0; dx < cellCols; dx++ {
				_, _, style, _ := screen.GetContent(i*cellCols+dx, j)
				if style != want {
					t.Fatalf("cell (%d,%d) column %d has wrong style", i, j, dx)
				}
			}
		}
	}
	if sink.style(core.Empty, 0, 0) == sink.style(core.Empty, 1, 0) {
		t.Fatal("empty cells should alternate shades")
	}

	for x, r := range "paused" {
		if got, _, _, _ := screen.GetContent(x, g.H); got != r {
			t.Fatalf("status column %d = %q, expected %q", x, got, r)
		}
	}
}

func TestSessionHandlesMouseAndKeys(t *testing.T) {
	screen := newScreen(t, 20, 6)
	s, err := NewSession(screen, Options{Width: 4, Height: 2, Paused: true})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	grid := s.World().Grid()

	// Column 2 is the second cell because cells are two columns wide.
	s.Handle(tcell.NewEventMouse(2, 0, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(2, 0, tcell.ButtonNone, tcell.ModNone))
	if got := grid.At(1, 0); got != core.Conductor {
		t.Fatalf("click produced %v, expected conductor", got)
	}

	// Drag across the bottom row.
	s.Handle(tcell.NewEventMouse(0, 1, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(2, 1, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(4, 1, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(6, 1, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(6, 1, tcell.ButtonNone, tcell.ModNone))
	want := []core.CellState{core.Conductor, core.Empty, core.Conductor, core.Conductor}
	for x, w := range want {
		if got := grid.At(x, 1); got != w {
			t.Fatalf("bottom row cell %d = %v, expected %v", x, got, w)
		}
	}

	s.Handle(tcell.NewEventMouse(2, 0, tcell.ButtonSecondary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(2, 0, tcell.ButtonNone, tcell.ModNone))
	if got := grid.At(1, 0); got != core.Empty {
		t.Fatalf("right click left %v, expected empty", got)
	}

	s.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !s.Loop().Running() {
		t.Fatal("space did not start the simulation")
	}
	s.Handle(tcell.NewEventMouse(0, 0, tcell.ButtonMiddle, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if s.Loop().Running() {
		t.Fatal("middle click did not pause the simulation")
	}

	s.Handle(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if !grid.Equal(core.MustGrid(4, 2)) {
		t.Fatal("wheel down did not clear the board")
	}
}

func TestWheelDuringDragKeepsPress(t *testing.T) {
	screen := newScreen(t, 20, 6)
	s, err := NewSession(screen, Options{Width: 4, Height: 2, Paused: true})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	grid := s.World().Grid()

	s.Handle(tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(2, 0, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(4, 0, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(4, 0, tcell.WheelUp, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(4, 0, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(6, 0, tcell.ButtonPrimary, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(6, 0, tcell.ButtonNone, tcell.ModNone))

	want := []core.CellState{core.Conductor, core.Empty, core.Conductor, core.Conductor}
	for x, w := range want {
		if got := grid.At(x, 0); got != w {
			t.Fatalf("cell %d = %v, expected %v", x, got, w)
		}
	}
}

func TestSessionRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t, 20, 6)
	s, err := NewSession(screen, Options{Width: 4, Height: 2, Paused: true})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-ctx.Done():
		t.Fatal("Run did not return after q")
	}
}

func TestNewSessionRejectsBadSize(t *testing.T) {
	screen := newScreen(t, 20, 6)
	if _, err := NewSession(screen, Options{Width: 0, Height: 2}); err == nil {
		t.Fatal("expected error for zero width")
	}
}
