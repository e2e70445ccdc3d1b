package geom

// Rect is an axis-aligned bounding box with inclusive corner A and exclusive
// corner B (A.X <= x < B.X, A.Y <= y < B.Y), matching the half-open
// convention used throughout the grid model.
type Rect struct {
	A, B Point
}

// Pad grows r by n tiles in every direction.
func (r Rect) Pad(n int) Rect {
	return Rect{
		A: Point{X: r.A.X - n, Y: r.A.Y - n},
		B: Point{X: r.B.X + n, Y: r.B.Y + n},
	}
}

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.A.X && p.X < r.B.X && p.Y >= r.A.Y && p.Y < r.B.Y
}

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		A: Point{X: min(r.A.X, o.A.X), Y: min(r.A.Y, o.A.Y)},
		B: Point{X: max(r.B.X, o.B.X), Y: max(r.B.Y, o.B.Y)},
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
