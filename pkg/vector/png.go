package vector

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// Rasterize paints the document back into a pixel image. Because rectangles
// of one color never overlap and different colors cover disjoint cells,
// painting is plain assignment with no blending; rasterizing a document
// produced from a grid reproduces that grid exactly.
func Rasterize(d *Document) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
	for _, g := range d.Groups {
		c := color.NRGBA{R: g.Color.R, G: g.Color.G, B: g.Color.B, A: g.Color.A}
		for _, r := range g.Rects {
			for y := r.Y; y < r.Y+r.H; y++ {
				for x := r.X; x < r.X+r.W; x++ {
					img.SetNRGBA(x, y, c)
				}
			}
		}
	}
	return img
}

// RenderPNG rasterizes the document and encodes it as PNG.
func RenderPNG(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Rasterize(d)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
