package grid

// point is the sparse-storage key; plain struct equality makes it usable
// as a map key directly.
type point struct {
	x, y int
}

// Grid is a sparse two-dimensional container mapping (x, y) co-ords to
// values of type T. The tracked bounding rectangle (Top / Left / Bottom /
// Right, inclusive) grows automatically as values land on or near its
// edges and never degenerates below 1x1.
//
// The zero Grid is not usable; call New.
type Grid[T comparable] struct {
	fringe int
	def    T

	top    int
	left   int
	bottom int
	right  int

	cells map[point]T
}

// New returns a Grid holding values of type T.
//
// fringe is the minimum padding kept between the outermost set co-ord and
// the bounding rectangle; negative values are treated as 0. def is the
// value returned for unset co-ords - storing it via Set removes the cell
// instead. Both are fixed for the life of the grid.
//
// The initial rectangle is the 1x1 square at the origin grown to fit
// (0,0), ie. width = height = 2*fringe + 1 centred on the origin.
func New[T comparable](fringe int, def T) *Grid[T] {
	if fringe < 0 {
		fringe = 0
	}
	g := &Grid[T]{
		fringe: fringe,
		def:    def,
		cells:  map[point]T{},
	}
	g.fit(0, 0)
	return g
}

// Fringe returns the padding distance the grid was built with.
func (g *Grid[T]) Fringe() int { return g.fringe }

// Default returns the value the grid treats as "unset".
func (g *Grid[T]) Default() T { return g.def }

// Top returns the highest y of the bounding rectangle (inclusive).
func (g *Grid[T]) Top() int { return g.top }

// Left returns the lowest x of the bounding rectangle (inclusive).
func (g *Grid[T]) Left() int { return g.left }

// Bottom returns the lowest y of the bounding rectangle (inclusive).
func (g *Grid[T]) Bottom() int { return g.bottom }

// Right returns the highest x of the bounding rectangle (inclusive).
func (g *Grid[T]) Right() int { return g.right }

// Width of the bounding rectangle. Always >= 1.
func (g *Grid[T]) Width() int { return g.right - g.left + 1 }

// Height of the bounding rectangle. Always >= 1.
func (g *Grid[T]) Height() int { return g.top - g.bottom + 1 }

// At returns the value at (x, y), or the default if the co-ord holds no
// value. Works for any co-ord, inside the rectangle or not, and never
// moves the bounds.
func (g *Grid[T]) At(x, y int) T {
	v, ok := g.cells[point{x, y}]
	if !ok {
		return g.def
	}
	return v
}

// Set stores v at (x, y), growing the bounding rectangle so the co-ord
// sits at least fringe cells inside every edge it lands near. Setting the
// default value is the same as Unset. Returns the grid for chaining.
func (g *Grid[T]) Set(x, y int, v T) *Grid[T] {
	if v == g.def {
		return g.Unset(x, y)
	}
	g.cells[point{x, y}] = v
	g.fit(x, y)
	return g
}

// Unset removes any value at (x, y). The bounding rectangle is left alone;
// only Shrink ever pulls it back in. Returns the grid for chaining.
func (g *Grid[T]) Unset(x, y int) *Grid[T] {
	delete(g.cells, point{x, y})
	return g
}

// fit grows the rectangle so (x, y) sits at least fringe cells from every
// edge. The four checks all read the bounds as they were before this call,
// keeping them independent of each other - a co-ord landing in a corner
// moves an edge in each axis in one go.
func (g *Grid[T]) fit(x, y int) {
	top, left, bottom, right := g.top, g.left, g.bottom, g.right

	if x <= left+g.fringe {
		g.left = x - g.fringe
	}
	if x >= right-g.fringe {
		g.right = x + g.fringe
	}
	if y <= bottom+g.fringe {
		g.bottom = y - g.fringe
	}
	if y >= top-g.fringe {
		g.top = y + g.fringe
	}
}

// Shrink recomputes the smallest bounding rectangle (fringe included) that
// covers the currently set co-ords, by replaying them through a fresh grid
// built with the same options and then taking over its state wholesale.
// With nothing set the result is the same geometry as a new grid. Returns
// the grid for chaining.
func (g *Grid[T]) Shrink() *Grid[T] {
	fresh := New[T](g.fringe, g.def)
	g.EachSet(func(v T, x, y int) {
		fresh.Set(x, y, v)
	})

	g.top = fresh.top
	g.left = fresh.left
	g.bottom = fresh.bottom
	g.right = fresh.right
	g.cells = fresh.cells

	return g
}
