// Package life implements the Game of Life field, its B3/S23 step rule and
// the bounded snapshot history used for stepping backwards.
package life

import "math/rand"

// Fixed field dimensions.
const (
	GridWidth  = 80
	GridHeight = 60
)

// Cells is a read-only view of a cell field.
type Cells interface {
	Width() int
	Height() int
	Alive(x, y int) bool
}

// Grid is a fixed-size field of cells stored row-major.
// Its dimensions never change after NewGrid.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Alive reports the state of (x, y). Positions outside the grid are dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.w+x]
}

// Set changes the state of (x, y). Out-of-range positions are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x] = alive
}

// NeighborCount counts live cells among the 8 positions around (x, y).
// The border is clamped: positions outside the grid count as dead.
func (g *Grid) NeighborCount(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		row := ny * g.w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			if g.cells[row+nx] {
				count++
			}
		}
	}
	return count
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Randomize rewrites every cell, making each alive independently with
// probability density. Density is clamped to [0, 1].
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Snapshot returns an independent copy of the current cells.
func (g *Grid) Snapshot() Snapshot {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{w: g.w, h: g.h, cells: cells}
}

// Restore overwrites the grid with the contents of s. It reports false and
// leaves the grid untouched when the dimensions differ.
func (g *Grid) Restore(s Snapshot) bool {
	if s.w != g.w || s.h != g.h {
		return false
	}
	copy(g.cells, s.cells)
	return true
}

// Snapshot is an immutable copy of a grid's cells at one generation.
type Snapshot struct {
	w, h  int
	cells []bool
}

// Width returns the number of columns.
func (s Snapshot) Width() int { return s.w }

// Height returns the number of rows.
func (s Snapshot) Height() int { return s.h }

// Alive reports the state of (x, y) at the time the snapshot was taken.
func (s Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.cells[y*s.w+x]
}

// Population returns the number of live cells in the snapshot.
func (s Snapshot) Population() int {
	n := 0
	for _, c := range s.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether two cell fields have the same size and contents.
func Equal(a, b Cells) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Alive(x, y) != b.Alive(x, y) {
				return false
			}
		}
	}
	return true
}
