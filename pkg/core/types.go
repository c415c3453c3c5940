package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Region is an axis-aligned rectangle of grid cells with inclusive bounds.
type Region struct {
	Min Point
	Max Point
}

// Rect returns the region spanning (x0, y0) to (x1, y1) inclusive, with the
// corners normalised so that Min <= Max on both axes.
func Rect(x0, y0, x1, y1 int) Region {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Region{Min: Point{X: x0, Y: y0}, Max: Point{X: x1, Y: y1}}
}

// Clamp restricts the region to a w*h grid. The second result is false when
// nothing of the region lies inside the grid.
func (r Region) Clamp(w, h int) (Region, bool) {
	if r.Min.X < 0 {
		r.Min.X = 0
	}
	if r.Min.Y < 0 {
		r.Min.Y = 0
	}
	if r.Max.X > w-1 {
		r.Max.X = w - 1
	}
	if r.Max.Y > h-1 {
		r.Max.Y = h - 1
	}
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return Region{}, false
	}
	return r, true
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
