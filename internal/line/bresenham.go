package line

import (
	"image"
)

// PointsBetween returns every integer point on the line from a to b
// (inclusive of both ends), in order from a to b.
func PointsBetween(a, b image.Point) []image.Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)

	sx := 1
	if b.X < a.X {
		sx = -1
	}
	sy := 1
	if b.Y < a.Y {
		sy = -1
	}

	pts := make([]image.Point, 0, max(dx, -dy)+1)

	// standard bresenham error accumulator, covers all octants
	x, y, e := a.X, a.Y, dx+dy
	for {
		pts = append(pts, image.Pt(x, y))
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
