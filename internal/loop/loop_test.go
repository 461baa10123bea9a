package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"wireworld/internal/core"
	"wireworld/internal/sims/wireworld"
)

type recordingSink struct {
	draws        int
	last         *core.Grid
	cellW, cellH float64
}

func (s *recordingSink) Draw(g *core.Grid, cellW, cellH float64) {
	s.draws++
	s.last = g
	s.cellW, s.cellH = cellW, cellH
}

type countingPacer struct {
	allow  bool
	resets int
}

func (p *countingPacer) ShouldStep() bool { return p.allow }
func (p *countingPacer) Reset()           { p.resets++ }

func newWire(t *testing.T) *wireworld.World {
	t.Helper()
	world, err := wireworld.NewWithConfig(wireworld.Config{Width: 20, Height: 3, Pattern: "wire"})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return world
}

func TestTickRendersWhilePaused(t *testing.T) {
	world := newWire(t)
	sink := &recordingSink{}
	l := New(world, sink, nil)
	l.SetCellSize(12, 8)

	l.Tick()
	l.Tick()
	if world.Generation() != 0 {
		t.Fatalf("paused loop stepped %d times", world.Generation())
	}
	if sink.draws != 2 {
		t.Fatalf("expected 2 draws while paused, got %d", sink.draws)
	}
	if sink.last != world.Grid() || sink.cellW != 12 || sink.cellH != 8 {
		t.Fatal("sink did not receive the current grid and cell size")
	}
}

func TestTickStepsWhileRunning(t *testing.T) {
	world := newWire(t)
	sink := &recordingSink{}
	l := New(world, sink, nil)

	if !l.Toggle() {
		t.Fatal("toggle did not start running")
	}
	l.Tick()
	l.Tick()
	if world.Generation() != 2 {
		t.Fatalf("expected 2 generations, got %d", world.Generation())
	}
	if sink.last != world.Grid() {
		t.Fatal("sink must see the grid after the step")
	}

	l.Toggle()
	l.Tick()
	if world.Generation() != 2 || sink.draws != 3 {
		t.Fatalf("pause did not take effect at the tick boundary: gen=%d draws=%d", world.Generation(), sink.draws)
	}
}

func TestPacerGatesSteps(t *testing.T) {
	world := newWire(t)
	pacer := &countingPacer{}
	l := New(world, nil, pacer)

	l.SetRunning(true)
	if pacer.resets != 1 {
		t.Fatalf("resume should reset the pacer, got %d resets", pacer.resets)
	}
	l.Tick()
	if world.Generation() != 0 {
		t.Fatal("stepped although the pacer refused")
	}
	pacer.allow = true
	l.Tick()
	if world.Generation() != 1 {
		t.Fatalf("expected 1 generation, got %d", world.Generation())
	}
}

func TestToggleNeverClaimsDriver(t *testing.T) {
	l := New(newWire(t), nil, nil)
	if l.Active() {
		t.Fatal("new loop must not be active")
	}
	for i := 0; i < 5; i++ {
		l.Toggle()
		l.Toggle()
	}
	l.Toggle()
	if l.Active() {
		t.Fatal("toggling reported an active driver although none exists")
	}

	if !l.Start() || !l.Active() {
		t.Fatal("Start did not claim the loop")
	}
	if l.Start() {
		t.Fatal("Start on an active loop must report false")
	}
	l.Stop()
	if l.Active() {
		t.Fatal("loop still active after Stop")
	}
}

func TestStepOnceOnlyWhilePaused(t *testing.T) {
	world := newWire(t)
	l := New(world, nil, nil)
	l.StepOnce()
	if world.Generation() != 1 {
		t.Fatalf("expected single step, got %d", world.Generation())
	}
	l.SetRunning(true)
	l.StepOnce()
	if world.Generation() != 1 {
		t.Fatal("StepOnce must not step a running loop")
	}
}

func TestRunExecutesCommandsAndTicks(t *testing.T) {
	world := newWire(t)
	sink := &recordingSink{}
	l := New(world, sink, nil)

	frames := make(chan time.Time)
	commands := make(chan Command)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, frames, commands) }()

	commands <- func() { l.Toggle() }
	frames <- time.Now()
	frames <- time.Now()

	gen := make(chan uint64)
	commands <- func() { gen <- world.Generation() }
	if got := <-gen; got != 2 {
		t.Fatalf("expected 2 generations, got %d", got)
	}

	if err := l.Run(ctx, frames, commands); !errors.Is(err, ErrLoopActive) {
		t.Fatalf("second driver: expected ErrLoopActive, got %v", err)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, expected context.Canceled", err)
	}
	if l.Active() {
		t.Fatal("loop still active after Run returned")
	}
	l.Toggle()
	l.Toggle()
	if l.Active() {
		t.Fatal("toggling after Run returned reported an active driver")
	}
}

func TestRunStopsWhenCommandsClose(t *testing.T) {
	l := New(newWire(t), nil, nil)
	commands := make(chan Command)
	close(commands)
	if err := l.Run(context.Background(), nil, commands); err != nil {
		t.Fatalf("Run returned %v", err)
	}
}
