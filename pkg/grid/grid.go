// Package grid provides the in-memory pixel grid representation consumed by
// the conversion engine.
//
// A Grid is a dense width x height array of 8-bit RGBA samples decoded from a
// raster image. Once handed to the engine it is treated as immutable: the
// engine only reads it, and every grid is owned by exactly one conversion
// call. Colors compare structurally on all four channels; there is no color
// quantization anywhere in the system, so two visually identical but
// numerically different colors stay distinct.
package grid

import (
	"image"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied 8-bit RGBA sample.
// Two colors are equal iff all four channels match exactly.
type Color struct {
	R, G, B, A uint8
}

// IsEmpty reports whether the color is fully transparent. Fully transparent
// pixels are treated as a single "empty" color regardless of RGB and never
// produce geometry.
func (c Color) IsEmpty() bool {
	return c.A == 0
}

// Hex returns the color as a lowercase "#rrggbb" string. Alpha is carried
// separately (see Opacity); matching the SVG fill / fill-opacity split.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Opacity returns the alpha channel as a 0..1 fraction.
func (c Color) Opacity() float64 {
	return float64(c.A) / 255
}

// Grid is an immutable width x height pixel grid in row-major order.
type Grid struct {
	w, h int
	pix  []Color
}

// New creates an empty (fully transparent) grid. Width and height must be
// positive; New panics otherwise, since grids only come from decoded images
// which always have positive dimensions.
func New(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic("grid: dimensions must be positive")
	}
	return &Grid{w: w, h: h, pix: make([]Color, w*h)}
}

// FromImage converts a decoded image into a Grid. The image is normalized to
// non-premultiplied RGBA first so that partially transparent pixels keep
// their exact channel values.
func FromImage(img image.Image) *Grid {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	g := New(b.Dx(), b.Dy())
	for y := 0; y < g.h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+g.w*4]
		for x := 0; x < g.w; x++ {
			g.pix[y*g.w+x] = Color{
				R: row[x*4],
				G: row[x*4+1],
				B: row[x*4+2],
				A: row[x*4+3],
			}
		}
	}
	return g
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.h }

// Pixels returns the total pixel count (width * height).
func (g *Grid) Pixels() int { return g.w * g.h }

// At returns the color at (x, y). Coordinates are not bounds-checked beyond
// the slice access itself; callers iterate within Width/Height.
func (g *Grid) At(x, y int) Color {
	return g.pix[y*g.w+x]
}

// Set writes a pixel. It exists for grid construction (decoders, tests);
// the engine never mutates a grid it was handed.
func (g *Grid) Set(x, y int, c Color) {
	g.pix[y*g.w+x] = c
}

// Bytes returns a deterministic serialization of the grid (dimensions plus
// raw RGBA samples in row-major order), used for content-hash cache keys.
func (g *Grid) Bytes() []byte {
	buf := make([]byte, 0, 8+len(g.pix)*4)
	buf = append(buf,
		byte(g.w>>24), byte(g.w>>16), byte(g.w>>8), byte(g.w),
		byte(g.h>>24), byte(g.h>>16), byte(g.h>>8), byte(g.h))
	for _, c := range g.pix {
		buf = append(buf, c.R, c.G, c.B, c.A)
	}
	return buf
}
