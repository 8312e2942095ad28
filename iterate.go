package grid

// Visit receives one cell per call: its value and co-ords.
type Visit[T comparable] func(value T, x, y int)

// Each walks every co-ord of the bounding rectangle in row-major order -
// top row first, left to right within a row - calling visit for each one.
// Unset cells surface as the default value.
//
// The walk is synchronous and finite (width x height calls) and keeps no
// cursor; calling Each again re-walks whatever the bounds are then.
func (g *Grid[T]) Each(visit Visit[T]) {
	for y := g.top; y >= g.bottom; y-- {
		for x := g.left; x <= g.right; x++ {
			visit(g.At(x, y), x, y)
		}
	}
}

// EachSet is Each restricted to cells holding a non-default value.
func (g *Grid[T]) EachSet(visit Visit[T]) {
	for y := g.top; y >= g.bottom; y-- {
		for x := g.left; x <= g.right; x++ {
			v, ok := g.cells[point{x, y}]
			if !ok {
				continue
			}
			visit(v, x, y)
		}
	}
}

// EachAround walks the 3x3 neighbourhood of (x, y) in the same row-major
// order as Each, skipping the centre and any neighbour holding the default
// value. The neighbourhood need not sit inside the bounding rectangle;
// out-of-bounds neighbours read as default and so are skipped.
func (g *Grid[T]) EachAround(x, y int, visit Visit[T]) {
	for atY := y + 1; atY >= y-1; atY-- {
		for atX := x - 1; atX <= x+1; atX++ {
			if atX == x && atY == y {
				continue
			}
			v, ok := g.cells[point{atX, atY}]
			if !ok {
				continue
			}
			visit(v, atX, atY)
		}
	}
}
