package vector

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/pixvec/pixvec/pkg/grid"
	"github.com/pixvec/pixvec/pkg/mesh"
)

func TestRasterizeRoundTrip(t *testing.T) {
	// Rasterizing a document built from a grid must reproduce the grid.
	g := grid.New(3, 2)
	red := grid.Color{R: 255, A: 255}
	blue := grid.Color{B: 255, A: 128}
	g.Set(0, 0, red)
	g.Set(1, 0, red)
	g.Set(2, 1, blue)

	d := New(g.Width(), g.Height(), mesh.Tile(g))
	img := Rasterize(d)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			want := g.At(x, y)
			got := img.NRGBAAt(x, y)
			if got.R != want.R || got.G != want.G || got.B != want.B || got.A != want.A {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestRenderPNGDecodable(t *testing.T) {
	d := New(2, 2, []mesh.Group{
		{Color: grid.Color{G: 255, A: 255}, Rects: []mesh.Rect{{W: 2, H: 2}}},
	})

	data, err := RenderPNG(d)
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("decoded dimensions = %dx%d, want 2x2", b.Dx(), b.Dy())
	}
}

func TestRasterizeEmptyDocument(t *testing.T) {
	img := Rasterize(New(4, 3, nil))

	b := img.Bounds()
	if b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", b.Dx(), b.Dy())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				t.Errorf("pixel (%d,%d) not transparent", x, y)
			}
		}
	}
}
