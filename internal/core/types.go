package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the loop and frontends drive.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Grid() *Grid
	Generation() uint64
}

// Sink draws a grid. Each cell (i, j) covers the rectangle at
// (i*cellW, j*cellH) sized cellW×cellH.
type Sink interface {
	Draw(g *Grid, cellW, cellH float64)
}
