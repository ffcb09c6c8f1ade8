package mesh

import (
	"github.com/pixvec/pixvec/pkg/grid"
)

// Mask is a per-color boolean occupancy grid: true where the pixel holds the
// mask's color. Masks are transient scratch state, built per color and
// consumed destructively by the mesher.
type Mask struct {
	w, h  int
	cells []bool
}

// NewMask creates an all-false mask of the given dimensions.
func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, cells: make([]bool, w*h)}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height.
func (m *Mask) Height() int { return m.h }

// At reports whether the cell (x, y) is set.
func (m *Mask) At(x, y int) bool {
	return m.cells[y*m.w+x]
}

// Set marks or clears the cell (x, y).
func (m *Mask) Set(x, y int, v bool) {
	m.cells[y*m.w+x] = v
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

// Any reports whether any cell is set.
func (m *Mask) Any() bool {
	for _, c := range m.cells {
		if c {
			return true
		}
	}
	return false
}

// ClearRect clears every cell covered by r.
func (m *Mask) ClearRect(r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		row := m.cells[y*m.w : (y+1)*m.w]
		for x := r.X; x < r.X+r.W; x++ {
			row[x] = false
		}
	}
}

// Group is the per-color output of a covering strategy: the color plus the
// rectangles that exactly cover its pixels.
type Group struct {
	Color grid.Color
	Rects []Rect
}

// Layer pairs a color with its occupancy mask.
type Layer struct {
	Color grid.Color
	Mask  *Mask
}

// Colors returns the distinct non-empty colors of g in first-seen row-major
// scan order. Fully transparent pixels contribute no color.
func Colors(g *grid.Grid) []grid.Color {
	seen := make(map[grid.Color]struct{})
	var out []grid.Color
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y)
			if c.IsEmpty() {
				continue
			}
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				out = append(out, c)
			}
		}
	}
	return out
}

// MaskFor builds the occupancy mask of a single color. Building one mask at
// a time keeps peak memory at a single W x H mask during meshing.
func MaskFor(g *grid.Grid, c grid.Color) *Mask {
	m := NewMask(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == c {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Partition builds all per-color masks at once, ordered by first appearance.
// An entirely transparent grid yields no layers. Prefer Colors plus MaskFor
// when covering a large grid color by color.
func Partition(g *grid.Grid) []Layer {
	colors := Colors(g)
	layers := make([]Layer, 0, len(colors))
	index := make(map[grid.Color]int, len(colors))
	for i, c := range colors {
		layers = append(layers, Layer{Color: c, Mask: NewMask(g.Width(), g.Height())})
		index[c] = i
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y)
			if c.IsEmpty() {
				continue
			}
			layers[index[c]].Mask.Set(x, y, true)
		}
	}
	return layers
}
