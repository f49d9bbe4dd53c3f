package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hullscan/pkg/pipeline"
)

// computeCommand creates the compute command for running the hull
// pipeline on a point file.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	c.applyConfig(&opts)

	cmd := &cobra.Command{
		Use:   "compute [points-file]",
		Short: "Compute the convex hull of a point file",
		Long: `Compute the convex hull of a point file.

The input is either the whitespace text format (a point count followed
by x y pairs) or the JSON format ({"points": [{"x": 0, "y": 0}, ...]}),
selected by the file extension.

Whole-number inputs are computed with exact integer arithmetic, so the
result is correct even at coordinates where floating point rounds.
Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			// An explicit flag wins over configured formats.
			if formatsStr != "" || len(opts.Formats) == 0 {
				opts.Formats = parseFormats(formatsStr)
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runCompute(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", c.Config.NoCache, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	cmd.Flags().StringVar(&opts.Policy, "policy", opts.Policy, "collinearity policy: extreme (default), edges")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), json, svg (comma-separated)")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "SVG frame width")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "SVG frame height")
	cmd.Flags().BoolVar(&opts.ShowPoints, "points", opts.ShowPoints, "draw input points in the SVG output")

	return cmd
}

// applyConfig seeds pipeline options from the user's configuration file.
func (c *CLI) applyConfig(opts *pipeline.Options) {
	opts.Policy = c.Config.Policy
	opts.Width = c.Config.Width
	opts.Height = c.Config.Height
	if len(c.Config.Formats) > 0 {
		opts.Formats = c.Config.Formats
	}
}

// runCompute executes the pipeline and writes the requested artifacts.
func (c *CLI) runCompute(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing hull of %s...", opts.Input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Computation failed")
		return fmt.Errorf("compute: %w", err)
	}
	spinner.Stop()

	printSuccess("Hull computed")
	printStats(result.Stats.PointCount, result.Stats.VertexCount, result.CacheInfo.HullHit)

	return writeArtifacts(result.Artifacts, opts.Formats, opts.Input, output)
}

// writeArtifacts writes rendered outputs to files, or the single text
// artifact to stdout when no output path is given.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	if output == "" && len(formats) == 1 && formats[0] == pipeline.FormatText {
		_, err := os.Stdout.Write(artifacts[pipeline.FormatText])
		return err
	}

	base := basePath(output, input)
	for _, format := range formats {
		path := base + "." + format
		if format == pipeline.FormatText {
			path = base + ".txt"
		}
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output ends
// in a format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] || ext == "txt" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}
