package mesh

import (
	"github.com/pixvec/pixvec/pkg/grid"
)

// Tile emits one 1x1 rectangle per opaque pixel with that pixel's exact
// color, grouped by color in first-seen order. No merging takes place, no
// masks are needed, and the result always has exactly one rectangle per
// pixel with A > 0. This is the exact-pixel-fidelity alternative to Mesher.
func Tile(g *grid.Grid) []Group {
	var groups []Group
	index := make(map[grid.Color]int)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y)
			if c.IsEmpty() {
				continue
			}
			i, ok := index[c]
			if !ok {
				i = len(groups)
				index[c] = i
				groups = append(groups, Group{Color: c})
			}
			groups[i].Rects = append(groups[i].Rects, Rect{X: x, Y: y, W: 1, H: 1})
		}
	}
	return groups
}
