package mesh

// Rect is an axis-aligned rectangle in pixel coordinates with a positive
// integer extent.
type Rect struct {
	X, Y int // top-left origin
	W, H int // extents, always >= 1
}

// Area returns the covered cell count.
func (r Rect) Area() int {
	return r.W * r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Overlaps reports whether two rectangles share any cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
