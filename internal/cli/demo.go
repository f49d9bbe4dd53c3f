package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hullscan/pkg/pipeline"
)

// fixture is a named built-in point set for the demo command.
type fixture struct {
	Name        string
	Description string
	Points      []pipeline.PointSpec
}

// fixtures are the built-in demo point sets. The classic set carries
// duplicates and three collinear rays through the anchor, so it
// exercises deduplication, ray pruning, and both policies at once.
var fixtures = []fixture{
	{
		Name:        "classic",
		Description: "11 mixed points with duplicates and collinear rays",
		Points: []pipeline.PointSpec{
			{X: 3, Y: 7}, {X: 5, Y: 4}, {X: 9, Y: 21}, {X: 6, Y: 14},
			{X: 0, Y: 20}, {X: 2, Y: 0}, {X: -5, Y: 10}, {X: 10, Y: 8},
			{X: 0, Y: 2}, {X: 0, Y: 0}, {X: 4, Y: 0},
			// duplicates
			{X: 0, Y: 0}, {X: 9, Y: 21}, {X: 2, Y: 0},
		},
	},
	{
		Name:        "square",
		Description: "axis-aligned square with edge midpoints and center",
		Points: []pipeline.PointSpec{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
			{X: 2, Y: 0}, {X: 4, Y: 2}, {X: 2, Y: 4}, {X: 0, Y: 2},
			{X: 2, Y: 2},
		},
	},
	{
		Name:        "line",
		Description: "all points on one line (degenerate segment hull)",
		Points: []pipeline.PointSpec{
			{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 5, Y: 5},
		},
	},
	{
		Name:        "triangle",
		Description: "triangle with interior points",
		Points: []pipeline.PointSpec{
			{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 4, Y: 6},
			{X: 4, Y: 2}, {X: 3, Y: 1}, {X: 5, Y: 1},
		},
	},
}

// findFixture returns the named fixture.
func findFixture(name string) (fixture, bool) {
	for _, f := range fixtures {
		if f.Name == name {
			return f, true
		}
	}
	return fixture{}, false
}

// fixtureNames returns the sorted fixture names for help output.
func fixtureNames() []string {
	names := make([]string, len(fixtures))
	for i, f := range fixtures {
		names[i] = f.Name
	}
	sort.Strings(names)
	return names
}

// demoCommand creates the demo command for running built-in fixtures.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		list       bool
	)
	opts := pipeline.Options{}
	c.applyConfig(&opts)

	cmd := &cobra.Command{
		Use:       "demo [fixture]",
		Short:     "Run the hull pipeline on a built-in point set",
		Long:      `Run the hull pipeline on a built-in point set. Without arguments an interactive picker opens; pass a fixture name to skip it. Use --list to see all fixtures.`,
		ValidArgs: fixtureNames(),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, f := range fixtures {
					printInfo("%s", f.Name)
					printDetail("%s (%d points)", f.Description, len(f.Points))
				}
				return nil
			}

			var f fixture
			if len(args) == 1 {
				f, _ = findFixture(args[0])
			} else {
				selected, err := pickFixture()
				if err != nil {
					return err
				}
				if selected == nil {
					return nil // user quit the picker
				}
				f = *selected
			}

			opts.Points = f.Points
			// An explicit flag wins over configured formats.
			if formatsStr != "" || len(opts.Formats) == 0 {
				opts.Formats = parseFormats(formatsStr)
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runDemo(cmd.Context(), f, opts, output)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list available fixtures")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.Policy, "policy", opts.Policy, "collinearity policy: extreme (default), edges")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), json, svg (comma-separated)")
	cmd.Flags().BoolVar(&opts.ShowPoints, "points", opts.ShowPoints, "draw input points in the SVG output")

	return cmd
}

// runDemo computes the fixture hull and prints or writes the result.
func (c *CLI) runDemo(ctx context.Context, f fixture, opts pipeline.Options, output string) error {
	runner, err := c.newRunner(true) // demo runs are tiny, skip the cache
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return fmt.Errorf("demo %s: %w", f.Name, err)
	}
	prog.done(fmt.Sprintf("Computed %d hull vertices", result.Stats.VertexCount))

	printSuccess("Fixture %s", f.Name)
	printStats(result.Stats.PointCount, result.Stats.VertexCount, false)

	return writeArtifacts(result.Artifacts, opts.Formats, f.Name, output)
}
