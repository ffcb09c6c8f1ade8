package grid

import (
	"image"
	"image/color"
	"testing"
)

func TestColorIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  bool
	}{
		{
			name:  "fully transparent black",
			color: Color{A: 0},
			want:  true,
		},
		{
			name:  "fully transparent with RGB set",
			color: Color{R: 255, G: 10, B: 3, A: 0},
			want:  true,
		},
		{
			name:  "barely visible",
			color: Color{R: 1, A: 1},
			want:  false,
		},
		{
			name:  "opaque",
			color: Color{R: 255, A: 255},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{
			name:  "red",
			color: Color{R: 255, A: 255},
			want:  "#ff0000",
		},
		{
			name:  "white",
			color: Color{R: 255, G: 255, B: 255, A: 255},
			want:  "#ffffff",
		},
		{
			name:  "black",
			color: Color{A: 255},
			want:  "#000000",
		},
		{
			name:  "alpha does not affect hex",
			color: Color{R: 0x12, G: 0x34, B: 0x56, A: 128},
			want:  "#123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorOpacity(t *testing.T) {
	if got := (Color{A: 255}).Opacity(); got != 1.0 {
		t.Errorf("Opacity() = %v, want 1.0", got)
	}
	if got := (Color{A: 0}).Opacity(); got != 0.0 {
		t.Errorf("Opacity() = %v, want 0.0", got)
	}
	if got := (Color{A: 51}).Opacity(); got != 0.2 {
		t.Errorf("Opacity() = %v, want 0.2", got)
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 128})
	// (1,1) stays fully transparent

	g := FromImage(img)

	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", g.Width(), g.Height())
	}
	if got := g.At(0, 0); got != (Color{R: 255, A: 255}) {
		t.Errorf("At(0,0) = %+v", got)
	}
	if got := g.At(1, 0); got != (Color{G: 255, A: 255}) {
		t.Errorf("At(1,0) = %+v", got)
	}
	if got := g.At(0, 1); got != (Color{B: 255, A: 128}) {
		t.Errorf("At(0,1) = %+v", got)
	}
	if got := g.At(1, 1); !got.IsEmpty() {
		t.Errorf("At(1,1) = %+v, want fully transparent", got)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Subimages with non-zero origin must map to grid coordinates from (0,0).
	img := image.NewNRGBA(image.Rect(3, 5, 5, 7))
	img.SetNRGBA(3, 5, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	g := FromImage(img)

	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", g.Width(), g.Height())
	}
	if got := g.At(0, 0); got != (Color{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("At(0,0) = %+v", got)
	}
}

func TestBytesDeterministic(t *testing.T) {
	g := New(2, 1)
	g.Set(0, 0, Color{R: 1, G: 2, B: 3, A: 4})
	g.Set(1, 0, Color{R: 5, G: 6, B: 7, A: 8})

	a := g.Bytes()
	b := g.Bytes()
	if string(a) != string(b) {
		t.Error("Bytes() not deterministic")
	}

	want := []byte{0, 0, 0, 2, 0, 0, 0, 1, 1, 2, 3, 4, 5, 6, 7, 8}
	if string(a) != string(want) {
		t.Errorf("Bytes() = %v, want %v", a, want)
	}
}

func TestNewPanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0, 5) did not panic")
		}
	}()
	New(0, 5)
}
