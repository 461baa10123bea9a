package wireworld

import (
	"errors"
	"fmt"

	"wireworld/internal/core"
)

// ErrSizeMismatch is returned by StepInto when dst and src differ in size.
var ErrSizeMismatch = errors.New("grid size mismatch")

// Step returns the next generation of src as a freshly allocated grid. src
// is not modified.
func Step(src *core.Grid) *core.Grid {
	dst := src.Clone()
	advance(dst, src)
	return dst
}

// StepInto writes the next generation of src into dst. Every cell of dst is
// overwritten and src is only read, so dst must not alias src.
func StepInto(dst, src *core.Grid) error {
	if !dst.SameSize(src) {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, src.W, src.H, dst.W, dst.H)
	}
	if dst == src {
		return errors.New("step destination aliases source")
	}
	advance(dst, src)
	return nil
}

func advance(dst, src *core.Grid) {
	w, h := src.W, src.H
	cur := src.Cells()
	nxt := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch cur[idx] {
			case core.ElectronHead:
				nxt[idx] = core.ElectronTail
			case core.ElectronTail:
				nxt[idx] = core.Conductor
			case core.Conductor:
				heads := headNeighbors(cur, w, h, x, y)
				if heads == 1 || heads == 2 {
					nxt[idx] = core.ElectronHead
				} else {
					nxt[idx] = core.Conductor
				}
			default:
				nxt[idx] = core.Empty
			}
		}
	}
}

// headNeighbors counts electron heads in the Moore neighbourhood of (x, y).
// Neighbours outside the grid are skipped rather than wrapped.
func headNeighbors(cells []core.CellState, w, h, x, y int) int {
	heads := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
				continue
			}
			if cells[ny*w+nx] == core.ElectronHead {
				heads++
			}
		}
	}
	return heads
}
