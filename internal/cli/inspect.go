package cli

import (
	"fmt"
	"path/filepath"

	"github.com/cenkalti/dominantcolor"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/pixvec/pixvec/pkg/engine"
	"github.com/pixvec/pixvec/pkg/errors"
	"github.com/pixvec/pixvec/pkg/grid"
	"github.com/pixvec/pixvec/pkg/mesh"
)

// inspectCommand creates the inspect command for previewing conversion cost.
// It reports image dimensions, the distinct color count, the dominant color,
// and the shape count each mode would produce, without writing any output.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [files...]",
		Short: "Print image statistics and per-mode shape estimates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, path := range args {
				if i > 0 {
					fmt.Println()
				}
				if err := c.runInspect(cmd, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *CLI) runInspect(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())

	img, err := imaging.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeDecodeFailed, err, "open %s", path)
	}
	g := grid.FromImage(img)
	logger.Debug("loaded image", "path", path, "pixels", g.Pixels())

	spin := newSpinnerWithContext(cmd.Context(), "Analyzing "+filepath.Base(path))
	spin.Start()

	colors := mesh.Colors(g)
	tiles := mesh.Tile(g)
	legoShapes := 0
	for _, group := range tiles {
		legoShapes += len(group.Rects)
	}

	var mesher mesh.Mesher
	groups, err := mesher.MeshGrid(cmd.Context(), g)
	spin.Stop()
	if err != nil {
		return err
	}
	monolithShapes := 0
	for _, group := range groups {
		monolithShapes += len(group.Rects)
	}

	printKeyValue("File", filepath.Base(path))
	printKeyValue("Dimensions", fmt.Sprintf("%d x %d", g.Width(), g.Height()))
	printKeyValue("Pixels", fmt.Sprintf("%d", g.Pixels()))
	printKeyValue("Opaque pixels", fmt.Sprintf("%d", legoShapes))
	printKeyValue("Colors", fmt.Sprintf("%d", len(colors)))
	if legoShapes > 0 {
		printKeyValue("Dominant", dominantcolor.Hex(dominantcolor.Find(img)))
	}
	printKeyValue("Monolith shapes", fmt.Sprintf("%d", monolithShapes))
	printKeyValue("Lego shapes", fmt.Sprintf("%d", legoShapes))

	threshold := c.Config.WarnThreshold
	if threshold == 0 {
		threshold = engine.DefaultWarnThreshold
	}
	if legoShapes > threshold {
		printWarning("lego mode would emit %d shapes; large files may be slow in editors", legoShapes)
	}
	if g.Pixels() > engine.DefaultMaxPixels {
		printWarning("image exceeds the default %d pixel limit; convert will refuse it", engine.DefaultMaxPixels)
	}
	return nil
}
