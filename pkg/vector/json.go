package vector

import (
	"encoding/json"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
}

// WithJSONIndent pretty-prints the output for human inspection.
func WithJSONIndent() JSONOption {
	return func(r *jsonRenderer) { r.indent = true }
}

type jsonOutput struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Shapes int         `json:"shapes"`
	Groups []jsonGroup `json:"groups"`
}

type jsonGroup struct {
	Fill    string     `json:"fill"`
	Opacity float64    `json:"opacity"`
	Rects   []jsonRect `json:"rects"`
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// RenderJSON serializes the document as a machine-readable shape listing,
// preserving the canonical group and rectangle ordering.
func RenderJSON(d *Document, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:  d.Width,
		Height: d.Height,
		Shapes: d.ShapeCount(),
		Groups: make([]jsonGroup, 0, len(d.Groups)),
	}
	for _, g := range d.Groups {
		jg := jsonGroup{
			Fill:    g.Color.Hex(),
			Opacity: g.Color.Opacity(),
			Rects:   make([]jsonRect, 0, len(g.Rects)),
		}
		for _, rect := range g.Rects {
			jg.Rects = append(jg.Rects, jsonRect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H})
		}
		out.Groups = append(out.Groups, jg)
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
