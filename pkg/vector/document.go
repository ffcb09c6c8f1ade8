// Package vector holds the output document model and its renderers.
//
// A Document is a sequence of per-color shape groups at pixel-aligned
// coordinates, produced by the engine and serialized by one of the sinks
// (SVG, JSON, PNG). Rendering is deterministic: identical documents always
// produce byte-identical output.
package vector

import (
	"cmp"
	"slices"

	"github.com/pixvec/pixvec/pkg/mesh"
)

// Document is the final vector output of one conversion. Document
// coordinates equal pixel coordinates: width and height match the source
// grid. Groups are ordered by color first appearance in the source and
// rectangles within a group by origin (y, then x).
type Document struct {
	Width  int
	Height int
	Groups []mesh.Group
}

// New builds a document from covering output, establishing the canonical
// shape ordering. The groups slice is taken over and sorted in place.
func New(w, h int, groups []mesh.Group) *Document {
	for i := range groups {
		slices.SortFunc(groups[i].Rects, func(a, b mesh.Rect) int {
			if c := cmp.Compare(a.Y, b.Y); c != 0 {
				return c
			}
			return cmp.Compare(a.X, b.X)
		})
	}
	return &Document{Width: w, Height: h, Groups: groups}
}

// ShapeCount returns the total number of rectangles across all groups.
func (d *Document) ShapeCount() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Rects)
	}
	return n
}

// Empty reports whether the document holds no geometry. An empty document
// is still valid and keeps its dimensions.
func (d *Document) Empty() bool {
	return d.ShapeCount() == 0
}
