package core

import "math/rand"

// Grid describes a square board of CellCount x CellCount cells.
type Grid struct {
	CellCount int
}

// NewGrid creates a grid with the given number of cells per side.
func NewGrid(cellCount int) Grid {
	return Grid{CellCount: cellCount}
}

// InBounds reports whether p lies on the board.
func (g Grid) InBounds(p Vec) bool {
	return p.X >= 0 && p.X < g.CellCount && p.Y >= 0 && p.Y < g.CellCount
}

// InInterior reports whether p lies on the board but off its outermost ring.
func (g Grid) InInterior(p Vec) bool {
	return p.X >= 1 && p.X <= g.CellCount-2 && p.Y >= 1 && p.Y <= g.CellCount-2
}

// RandomInterior returns a uniformly random cell with both coordinates in
// [1, CellCount-2]. The grid must be at least 3 cells wide.
func (g Grid) RandomInterior(rng *rand.Rand) Vec {
	span := g.CellCount - 2
	return Vec{
		X: 1 + rng.Intn(span),
		Y: 1 + rng.Intn(span),
	}
}
