// Package engine is the single entry point for pixel-to-vector conversion.
//
// Convert validates a pixel grid against configured limits, dispatches to
// the selected covering strategy (greedy meshing or unit tiling), and
// returns the vector document plus diagnostics. The engine is pure
// computation: no I/O, no shared state, and concurrent Convert calls on
// independent grids need no synchronization. Each call either produces a
// complete valid document or an error; there is no partial output.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pixvec/pixvec/pkg/errors"
	"github.com/pixvec/pixvec/pkg/grid"
	"github.com/pixvec/pixvec/pkg/mesh"
	"github.com/pixvec/pixvec/pkg/vector"
)

// Mode selects the covering strategy.
type Mode string

const (
	// ModeMonolith merges same-color pixel regions into a minimal set of
	// rectangles via greedy meshing, rendered as one path per color.
	ModeMonolith Mode = "monolith"

	// ModeLego emits one unit rectangle per opaque pixel, no merging.
	ModeLego Mode = "lego"
)

// ParseMode converts a mode string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMonolith, ModeLego:
		return Mode(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be 'monolith' or 'lego')", s)
}

// Default limits. MaxPixels bounds the input size checked before any
// processing; WarnThreshold flags Lego outputs whose element count is
// likely to strain downstream vector editors.
const (
	DefaultMaxPixels     = 1_000_000
	DefaultWarnThreshold = 50_000
)

// Options configures a conversion call.
type Options struct {
	// Mode is the covering strategy. Required ("monolith" or "lego").
	Mode Mode

	// MaxPixels is the W*H ceiling enforced before processing.
	// Defaults to DefaultMaxPixels.
	MaxPixels int

	// WarnThreshold is the shape count past which Diagnostics carries the
	// high-object-count flag. Defaults to DefaultWarnThreshold.
	WarnThreshold int

	// ShapeBudget caps greedy extraction per color mask; past the cap the
	// remainder is emitted per-pixel. 0 disables the cap.
	ShapeBudget int

	// Logger receives debug-level stage logs. Defaults to a discard logger.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Mode != ModeMonolith && o.Mode != ModeLego {
		return errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be 'monolith' or 'lego')", string(o.Mode))
	}
	if o.MaxPixels == 0 {
		o.MaxPixels = DefaultMaxPixels
	}
	if o.WarnThreshold == 0 {
		o.WarnThreshold = DefaultWarnThreshold
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Diagnostics describes a completed conversion. It is informational only
// and never affects the document.
type Diagnostics struct {
	// ShapeCount is the total number of emitted rectangles.
	ShapeCount int

	// ColorCount is the number of distinct non-empty colors.
	ColorCount int

	// HighObjectCount is set when ShapeCount exceeds the warning threshold
	// in Lego mode. Non-fatal: the document is complete and valid.
	HighObjectCount bool

	// MeshTime is the time spent in the covering strategy.
	MeshTime time.Duration
}

// Convert turns a pixel grid into a vector document. Validation happens
// before any work begins: an oversized grid fails with LIMIT_EXCEEDED and
// an unknown mode with INVALID_MODE, producing no partial output. An
// entirely transparent grid yields a valid empty document.
//
// Cancellation is cooperative at rectangle-extraction boundaries in
// Monolith mode; a canceled call fails with CANCELED.
func Convert(ctx context.Context, g *grid.Grid, opts Options) (*vector.Document, Diagnostics, error) {
	var diag Diagnostics

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, diag, err
	}
	if g.Pixels() > opts.MaxPixels {
		return nil, diag, errors.New(errors.ErrCodeLimitExceeded,
			"image dimensions exceed limit (%dx%d): max %d pixels",
			g.Width(), g.Height(), opts.MaxPixels)
	}

	start := time.Now()
	var (
		groups []mesh.Group
		err    error
	)
	switch opts.Mode {
	case ModeMonolith:
		m := &mesh.Mesher{ShapeBudget: opts.ShapeBudget}
		groups, err = m.MeshGrid(ctx, g)
		if err != nil {
			return nil, diag, errors.Wrap(errors.ErrCodeCanceled, err, "conversion interrupted")
		}
	case ModeLego:
		groups = mesh.Tile(g)
	}
	diag.MeshTime = time.Since(start)

	doc := vector.New(g.Width(), g.Height(), groups)
	diag.ShapeCount = doc.ShapeCount()
	diag.ColorCount = len(groups)
	diag.HighObjectCount = opts.Mode == ModeLego && diag.ShapeCount > opts.WarnThreshold

	opts.Logger.Debug("converted grid",
		"mode", opts.Mode,
		"colors", diag.ColorCount,
		"shapes", diag.ShapeCount,
		"duration", diag.MeshTime)

	return doc, diag, nil
}
