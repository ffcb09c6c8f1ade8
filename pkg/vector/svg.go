package vector

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	unitRects bool
}

// WithUnitRects renders every rectangle as an individual <rect> element with
// an inline fill, instead of one CSS class and one <path> per color. This is
// how Lego-mode output is written: one element per shape, exact pixel
// fidelity over compactness.
func WithUnitRects() SVGOption {
	return func(r *svgRenderer) { r.unitRects = true }
}

// RenderSVG serializes the document as an SVG with explicit pixel
// dimensions and crisp-edge rendering. Identical documents yield
// byte-identical output.
func RenderSVG(d *Document, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(d.Width, d.Height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, d.Width, d.Height),
		`shape-rendering="crispEdges"`)

	if r.unitRects {
		renderRects(canvas, d)
	} else {
		renderPaths(canvas, d)
	}

	canvas.End()
	return buf.Bytes()
}

// renderRects writes one <rect> per shape with inline fill attributes.
// fill-opacity is emitted only for partially transparent colors.
func renderRects(canvas *svg.SVG, d *Document) {
	for _, g := range d.Groups {
		fill := fmt.Sprintf(`fill="%s"`, g.Color.Hex())
		if g.Color.A < 255 {
			fill += fmt.Sprintf(` fill-opacity="%s"`, formatOpacity(g.Color.Opacity()))
		}
		for _, rect := range g.Rects {
			canvas.Rect(rect.X, rect.Y, rect.W, rect.H, fill)
		}
	}
}

// renderPaths writes one CSS fill class and one <path> per color. Each
// rectangle becomes a closed M/h/v/h subpath, so a color's entire geometry
// is a single drawable element.
func renderPaths(canvas *svg.SVG, d *Document) {
	if len(d.Groups) == 0 {
		return
	}

	rules := make([]string, 0, len(d.Groups))
	for i, g := range d.Groups {
		rules = append(rules, fmt.Sprintf(".c%d { fill:%s; fill-opacity:%s; }",
			i, g.Color.Hex(), formatOpacity(g.Color.Opacity())))
	}
	canvas.Style("text/css", rules...)

	for i, g := range d.Groups {
		var path strings.Builder
		for _, rect := range g.Rects {
			fmt.Fprintf(&path, "M%d,%dh%dv%dh-%dz", rect.X, rect.Y, rect.W, rect.H, rect.W)
		}
		canvas.Path(path.String(), fmt.Sprintf(`class="c%d"`, i))
	}
}

// formatOpacity renders an alpha fraction with the shortest exact decimal
// representation, keeping output stable across runs.
func formatOpacity(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
