package core

import (
	"errors"
	"fmt"
)

// CellState is the state of a single WireWorld cell. The zero value is Empty.
type CellState uint8

const (
	// Empty cells never change on their own.
	Empty CellState = iota
	// ElectronHead is the leading half of a moving signal.
	ElectronHead
	// ElectronTail trails a head and decays back into a conductor.
	ElectronTail
	// Conductor carries signals.
	Conductor

	numStates = 4
)

// ErrInvalidState is returned when decoding a byte outside the four states.
var ErrInvalidState = errors.New("invalid cell state")

// ErrInvalidSize is returned when a grid is constructed with non-positive
// dimensions.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

var stateNames = [numStates]string{"empty", "head", "tail", "conductor"}

// String returns a short lowercase name for the state.
func (s CellState) String() string {
	if int(s) < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// ParseCellState decodes a raw byte into a CellState.
func ParseCellState(v uint8) (CellState, error) {
	if int(v) >= numStates {
		return Empty, fmt.Errorf("%w: %d", ErrInvalidState, v)
	}
	return CellState(v), nil
}

// primaryNext is the primary-click ring: conductor -> head -> tail ->
// conductor, with empty entering the ring as a conductor.
var primaryNext = [numStates]CellState{
	Empty:        Conductor,
	ElectronHead: ElectronTail,
	ElectronTail: Conductor,
	Conductor:    ElectronHead,
}

// NextOnPrimary returns the state a primary click turns s into.
func (s CellState) NextOnPrimary() CellState { return primaryNext[s] }

// IsElectron reports whether s is a head or a tail.
func (s CellState) IsElectron() bool { return s == ElectronHead || s == ElectronTail }

// Grid stores a dense W×H array of cell states in row-major order.
type Grid struct {
	W, H int
	data []CellState
}

// NewGrid allocates an all-empty grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return newGrid(w, h), nil
}

// MustGrid is like NewGrid but panics on invalid dimensions. It is meant for
// tests and package-level fixtures.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

func newGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, data: make([]CellState, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []CellState { return g.data }

// Index returns the linear slice index for coordinates (i, j).
func (g *Grid) Index(i, j int) int { return j*g.W + i }

// In reports whether (i, j) lies inside the grid.
func (g *Grid) In(i, j int) bool { return i >= 0 && i < g.W && j >= 0 && j < g.H }

// At returns the state at (i, j). Coordinates outside the grid read as Empty.
func (g *Grid) At(i, j int) CellState {
	if !g.In(i, j) {
		return Empty
	}
	return g.data[g.Index(i, j)]
}

// Set writes s at (i, j) and reports whether the coordinate was in range.
func (g *Grid) Set(i, j int, s CellState) bool {
	if !g.In(i, j) {
		return false
	}
	g.data[g.Index(i, j)] = s
	return true
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.W, g.H)
	copy(c.data, g.data)
	return c
}

// SameSize reports whether o has the same dimensions as g.
func (g *Grid) SameSize(o *Grid) bool { return o != nil && g.W == o.W && g.H == o.H }

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameSize(o) {
		return false
	}
	for i, s := range g.data {
		if o.data[i] != s {
			return false
		}
	}
	return true
}

// Census counts the cells in each state.
type Census [numStates]int

// Of returns the count for state s.
func (c Census) Of(s CellState) int { return c[s] }

// Census tallies the grid by state.
func (g *Grid) Census() Census {
	var c Census
	for _, s := range g.data {
		c[s]++
	}
	return c
}
