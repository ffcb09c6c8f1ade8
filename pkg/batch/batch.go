// Package batch drives conversions over a queue of images.
//
// A Runner owns a single background worker that consumes jobs sequentially
// and pushes completed results to a channel, keeping the caller free to
// stay responsive. The engine itself stays synchronous; the runner just
// invokes it once per dequeued item. One failing image never aborts the
// batch: its error travels on the Result and the worker moves on.
//
// Rendered artifacts are cached by content hash of the pixel data plus the
// conversion options, so re-running a batch over an unchanged asset
// directory is mostly cache reads.
package batch

import (
	"encoding/json"
	"strings"

	"github.com/pixvec/pixvec/pkg/errors"
)

// Output formats for rendered artifacts.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatPNG:  true,
}

// ParseFormats splits a comma-separated format list and validates it.
// An empty string defaults to SVG only.
func ParseFormats(s string) ([]string, error) {
	if s == "" {
		return []string{FormatSVG}, nil
	}
	formats := strings.Split(s, ",")
	for _, f := range formats {
		if !ValidFormats[f] {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"invalid format: %q (must be one of: svg, json, png)", f)
		}
	}
	return formats, nil
}

// diagKey is the pseudo-format under which diagnostics are cached, so a
// fully cached job can still report shape counts without reconverting.
const diagKey = "diag"

func marshalDiag(v any) []byte {
	data, _ := json.Marshal(v)
	return data
}
