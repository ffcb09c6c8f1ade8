package mesh

import (
	"context"

	"github.com/pixvec/pixvec/pkg/grid"
)

// Mesher computes greedy rectangle covers. The zero value is ready to use;
// a Mesher reuses its histogram scratch buffer across masks, so one Mesher
// per conversion call avoids per-color reallocation. A Mesher is not safe
// for concurrent use.
type Mesher struct {
	// ShapeBudget caps the number of greedily extracted rectangles per
	// mask. Once reached, remaining cells are emitted as unit rectangles,
	// bounding the quadratic blowup on noise-like masks. 0 means no cap.
	ShapeBudget int

	heights []int
}

// Mesh covers a mask with rectangles, consuming it in the process. The
// returned rectangles are pairwise non-overlapping and their union is
// exactly the set of cells that were true on entry.
//
// Cancellation is cooperative: the context is checked once per extracted
// rectangle, since a single histogram scan is not interruptible.
func (m *Mesher) Mesh(ctx context.Context, mask *Mask) ([]Rect, error) {
	if cap(m.heights) < mask.w {
		m.heights = make([]int, mask.w)
	}
	heights := m.heights[:mask.w]

	var rects []Rect
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m.ShapeBudget > 0 && len(rects) >= m.ShapeBudget {
			return appendUnitRects(rects, mask), nil
		}
		r, ok := largestRect(mask, heights)
		if !ok {
			return rects, nil
		}
		rects = append(rects, r)
		mask.ClearRect(r)
	}
}

// MeshGrid partitions the grid by color and covers each color's mask,
// returning one group per distinct color in first-seen order. Masks are
// built one at a time and released as soon as their rectangles are
// extracted.
func (m *Mesher) MeshGrid(ctx context.Context, g *grid.Grid) ([]Group, error) {
	colors := Colors(g)
	groups := make([]Group, 0, len(colors))
	for _, c := range colors {
		mask := MaskFor(g, c)
		rects, err := m.Mesh(ctx, mask)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{Color: c, Rects: rects})
	}
	return groups, nil
}

// largestRect finds the maximal-area all-true rectangle in the mask using
// the row histogram scan. Ties on area prefer the smallest y, then the
// smallest x, then the wider shape. Returns ok=false for an empty mask.
func largestRect(mask *Mask, heights []int) (Rect, bool) {
	for i := range heights {
		heights[i] = 0
	}
	var best Rect
	bestArea := 0
	for y := 0; y < mask.h; y++ {
		row := mask.cells[y*mask.w : (y+1)*mask.w]
		for x, set := range row {
			if set {
				heights[x]++
			} else {
				heights[x] = 0
			}
		}
		scanHistogram(heights, y, &best, &bestArea)
	}
	return best, bestArea > 0
}

// scanHistogram runs the monotonic-stack largest-rectangle pass over the
// height histogram of the row ending at y.
func scanHistogram(heights []int, y int, best *Rect, bestArea *int) {
	w := len(heights)
	stack := make([]int, 0, w)
	for x := 0; x <= w; x++ {
		cur := 0
		if x < w {
			cur = heights[x]
		}
		for len(stack) > 0 && heights[stack[len(stack)-1]] > cur {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			h := heights[top]
			left := 0
			if len(stack) > 0 {
				left = stack[len(stack)-1] + 1
			}
			cand := Rect{X: left, Y: y - h + 1, W: x - left, H: h}
			if betterRect(cand, *best, *bestArea) {
				*best = cand
				*bestArea = cand.Area()
			}
		}
		if x < w {
			stack = append(stack, x)
		}
	}
}

// betterRect is the deterministic preference order: larger area, then
// smaller y, then smaller x, then wider.
func betterRect(cand, best Rect, bestArea int) bool {
	area := cand.Area()
	if area != bestArea {
		return area > bestArea
	}
	if cand.Y != best.Y {
		return cand.Y < best.Y
	}
	if cand.X != best.X {
		return cand.X < best.X
	}
	return cand.W > best.W
}

// appendUnitRects drains the remaining mask cells as 1x1 rectangles in
// row-major order. Used past the shape budget.
func appendUnitRects(rects []Rect, mask *Mask) []Rect {
	for y := 0; y < mask.h; y++ {
		row := mask.cells[y*mask.w : (y+1)*mask.w]
		for x, set := range row {
			if set {
				rects = append(rects, Rect{X: x, Y: y, W: 1, H: 1})
				row[x] = false
			}
		}
	}
	return rects
}
