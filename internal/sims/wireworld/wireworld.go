package wireworld

import (
	"fmt"
	"strconv"

	"wireworld/internal/core"
)

// Config holds construction parameters for a World.
type Config struct {
	Width   int
	Height  int
	Pattern string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 48}
}

// FromMap populates a Config from a string map. Unparseable or
// non-positive dimensions keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c
}

// World is a WireWorld simulation with two fixed buffers. Step always reads
// cur and writes nxt, then swaps their roles.
type World struct {
	cur, nxt   *core.Grid
	generation uint64
}

// New creates an empty World with the given dimensions.
func New(w, h int) (*World, error) {
	cur, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &World{cur: cur, nxt: cur.Clone()}, nil
}

// NewWithConfig creates a World and stamps the configured pattern, if any,
// at the centre of the grid.
func NewWithConfig(cfg Config) (*World, error) {
	w, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Pattern == "" {
		return w, nil
	}
	p, err := LookupPattern(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	if err := w.Load(p); err != nil {
		return nil, fmt.Errorf("load pattern %q: %w", cfg.Pattern, err)
	}
	return w, nil
}

// Name identifies the simulation.
func (w *World) Name() string { return "wireworld" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.cur.Size() }

// Grid exposes the current generation. Edits made through it are seen by
// the next Step.
func (w *World) Grid() *core.Grid { return w.cur }

// Generation returns the number of steps taken since the last reset.
func (w *World) Generation() uint64 { return w.generation }

// Step advances the automaton by one generation.
func (w *World) Step() {
	advance(w.nxt, w.cur)
	w.cur, w.nxt = w.nxt, w.cur
	w.generation++
}

// Clear empties the board and resets the generation counter.
func (w *World) Clear() {
	w.cur.Clear()
	w.generation = 0
}

// Load clears the board and stamps p centred on the grid.
func (w *World) Load(p *Pattern) error {
	size := w.Size()
	if p.W > size.W || p.H > size.H {
		return fmt.Errorf("pattern is %dx%d but grid is %dx%d", p.W, p.H, size.W, size.H)
	}
	w.Clear()
	p.Stamp(w.cur, (size.W-p.W)/2, (size.H-p.H)/2)
	return nil
}
