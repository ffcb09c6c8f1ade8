package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pixvec/pixvec/pkg/batch"
	"github.com/pixvec/pixvec/pkg/engine"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	mode        string // conversion mode: "monolith" or "lego"
	output      string // output directory ("" = next to each input)
	maxPixels   int    // input size limit in pixels
	shapeBudget int    // optional cap on merged shapes per color
	noCache     bool   // bypass the artifact cache
	progress    bool   // show the interactive progress view
}

// convertCommand creates the convert command for batch image conversion.
// Each input is converted independently; a failure on one file does not
// stop the rest of the batch.
func (c *CLI) convertCommand() *cobra.Command {
	var formatsStr string
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [files...]",
		Short: "Convert pixel-art images to vector documents",
		Long: `Convert one or more pixel-art images into vector documents.

Monolith mode (default) merges runs of same-colored pixels into larger
rectangles, producing compact output. Lego mode emits one tile per opaque
pixel, preserving the per-pixel structure for editing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConvertDefaults(cmd, &opts, &formatsStr)

			mode, err := engine.ParseMode(opts.mode)
			if err != nil {
				return err
			}
			formats, err := batch.ParseFormats(formatsStr)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args, mode, formats, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(engine.ModeMonolith), "conversion mode: monolith (default), lego")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: next to each input)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png (comma-separated)")
	cmd.Flags().IntVar(&opts.maxPixels, "max-pixels", engine.DefaultMaxPixels, "refuse inputs larger than this many pixels")
	cmd.Flags().IntVar(&opts.shapeBudget, "shape-budget", 0, "cap merged shapes per color, 0 = unlimited")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "show interactive progress for batch conversions")

	return cmd
}

// applyConvertDefaults fills unset flags from the config file.
func (c *CLI) applyConvertDefaults(cmd *cobra.Command, opts *convertOpts, formatsStr *string) {
	if !cmd.Flags().Changed("mode") && c.Config.Mode != "" {
		opts.mode = c.Config.Mode
	}
	if !cmd.Flags().Changed("output") && c.Config.OutputDir != "" {
		opts.output = c.Config.OutputDir
	}
	if *formatsStr == "" && c.Config.Formats != "" {
		*formatsStr = c.Config.Formats
	}
	if !cmd.Flags().Changed("max-pixels") && c.Config.MaxPixels > 0 {
		opts.maxPixels = c.Config.MaxPixels
	}
	if !cmd.Flags().Changed("shape-budget") && c.Config.ShapeBudget > 0 {
		opts.shapeBudget = c.Config.ShapeBudget
	}
}

// runConvert drives the batch runner over all inputs and writes artifacts.
func (c *CLI) runConvert(ctx context.Context, inputs []string, mode engine.Mode, formats []string, opts *convertOpts) error {
	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Cache.Close()

	runner.Engine = engine.Options{
		Mode:          mode,
		MaxPixels:     opts.maxPixels,
		WarnThreshold: c.Config.WarnThreshold,
		ShapeBudget:   opts.shapeBudget,
		Logger:        c.Logger,
	}
	runner.Formats = formats

	jobs := make([]batch.Job, len(inputs))
	for i, input := range inputs {
		jobs[i] = batch.NewJob(input)
	}

	ctx = withLogger(ctx, c.Logger)
	prog := newProgress(c.Logger)

	var succeeded int
	if opts.progress && len(jobs) > 1 {
		var err error
		succeeded, err = c.runConvertTUI(ctx, runner, jobs, opts.output)
		if err != nil {
			return err
		}
	} else {
		for res := range runner.Run(ctx, jobs) {
			if c.reportResult(res, opts.output) {
				succeeded++
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if len(jobs) > 1 {
		prog.done(fmt.Sprintf("Converted %d of %d images", succeeded, len(jobs)))
	}
	if succeeded == 0 {
		return fmt.Errorf("all %d conversions failed", len(jobs))
	}
	return nil
}

// reportResult writes a result's artifacts and prints its status line.
// It returns true if the conversion succeeded.
func (c *CLI) reportResult(res batch.Result, outDir string) bool {
	name := filepath.Base(res.Job.Path)
	if res.Err != nil {
		printError("%s: %v", name, res.Err)
		return false
	}

	written, err := writeArtifacts(res, outDir)
	if err != nil {
		printError("%s: %v", name, err)
		return false
	}

	printSuccess("%s", name)
	for _, path := range written {
		printFile(path)
	}
	printStats(res.Diagnostics.ShapeCount, res.Diagnostics.ColorCount, res.CacheHit)
	if res.Diagnostics.HighObjectCount {
		printWarning("%d shapes; large files may be slow in editors (try monolith mode)", res.Diagnostics.ShapeCount)
	}
	return true
}

// writeArtifacts persists every rendered format for a result and returns
// the paths written.
func writeArtifacts(res batch.Result, outDir string) ([]string, error) {
	written := make([]string, 0, len(res.Artifacts))
	for _, format := range []string{batch.FormatSVG, batch.FormatJSON, batch.FormatPNG} {
		data, ok := res.Artifacts[format]
		if !ok {
			continue
		}
		path, err := writeArtifact(outputPath(res.Job.Path, outDir, format), data)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
