package life

// Change counts the cells that flipped during one generation.
type Change struct {
	Births int
	Deaths int
}

// Step computes the next generation of cur under B3/S23 and returns it as a
// new grid. cur is not modified.
func Step(cur *Grid) *Grid {
	next := NewGrid(cur.w, cur.h)
	StepInto(next, cur)
	return next
}

// StepInto writes the next generation of cur into dst and reports how many
// cells were born and died. Every neighbour count is taken from cur, so dst
// must be a distinct grid of the same size. StepInto panics otherwise.
func StepInto(dst, cur *Grid) Change {
	if dst == cur {
		panic("life: StepInto called with aliased grids")
	}
	if dst.w != cur.w || dst.h != cur.h {
		panic("life: StepInto called with mismatched grid sizes")
	}

	var ch Change
	for y := 0; y < cur.h; y++ {
		for x := 0; x < cur.w; x++ {
			idx := y*cur.w + x
			alive := cur.cells[idx]
			n := cur.NeighborCount(x, y)

			next := n == 3 || (alive && n == 2)
			switch {
			case next && !alive:
				ch.Births++
			case !next && alive:
				ch.Deaths++
			}
			dst.cells[idx] = next
		}
	}
	return ch
}
