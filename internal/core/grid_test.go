package core

import (
	"errors"
	"testing"
)

func TestParseCellState(t *testing.T) {
	for v := uint8(0); v < 4; v++ {
		s, err := ParseCellState(v)
		if err != nil {
			t.Fatalf("ParseCellState(%d): %v", v, err)
		}
		if uint8(s) != v {
			t.Fatalf("ParseCellState(%d) = %d", v, s)
		}
	}
	for _, v := range []uint8{4, 5, 255} {
		if _, err := ParseCellState(v); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("ParseCellState(%d) error = %v, expected ErrInvalidState", v, err)
		}
	}
}

func TestPrimaryRing(t *testing.T) {
	s := Empty.NextOnPrimary()
	if s != Conductor {
		t.Fatalf("empty -> %v, expected conductor", s)
	}
	ring := []CellState{ElectronHead, ElectronTail, Conductor, ElectronHead}
	for _, want := range ring {
		s = s.NextOnPrimary()
		if s != want {
			t.Fatalf("got %v, expected %v", s, want)
		}
	}
}

func TestNewGridRejectsNonPositive(t *testing.T) {
	if _, err := NewGrid(0, 3); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := NewGrid(3, -2); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestGridBounds(t *testing.T) {
	g := MustGrid(3, 2)
	if len(g.Cells()) != 6 {
		t.Fatalf("expected 6 dense cells, got %d", len(g.Cells()))
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if g.Set(c[0], c[1], Conductor) {
			t.Fatalf("Set(%d,%d) accepted an out-of-range coordinate", c[0], c[1])
		}
		if g.At(c[0], c[1]) != Empty {
			t.Fatalf("At(%d,%d) should read as empty", c[0], c[1])
		}
	}
	if !g.Set(2, 1, ElectronTail) || g.At(2, 1) != ElectronTail {
		t.Fatal("in-range Set did not stick")
	}
	if g.Cells()[g.Index(2, 1)] != ElectronTail {
		t.Fatal("Index does not match row-major layout")
	}
}

func TestCloneEqualCensus(t *testing.T) {
	g := MustGrid(4, 4)
	g.Set(0, 0, Conductor)
	g.Set(1, 0, ElectronHead)
	g.Set(2, 0, ElectronTail)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from original")
	}
	c.Set(3, 3, Conductor)
	if c.Equal(g) || g.At(3, 3) != Empty {
		t.Fatal("clone shares storage with original")
	}
	if g.Equal(MustGrid(4, 3)) {
		t.Fatal("grids of different size compare equal")
	}

	census := g.Census()
	if census.Of(Empty) != 13 || census.Of(Conductor) != 1 || census.Of(ElectronHead) != 1 || census.Of(ElectronTail) != 1 {
		t.Fatalf("unexpected census %v", census)
	}

	g.Clear()
	if !g.Equal(MustGrid(4, 4)) {
		t.Fatal("Clear left non-empty cells")
	}
}
