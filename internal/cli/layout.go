package cli

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/strataviz/strata/pkg/graphio"
	"github.com/strataviz/strata/pkg/layout"
	"github.com/strataviz/strata/pkg/pipeline"
)

// layoutOpts holds the command-line flags shared by layout and render.
// Flags override the config file, which overrides options embedded in the
// input document.
type layoutOpts struct {
	configFile string

	rankDir          string
	ranker           string
	acyclicer        string
	nodeSep          float64
	edgeSep          float64
	rankSep          float64
	marginX          float64
	marginY          float64
	align            string
	noOrderHeuristic bool
}

// registerFlags adds the layout tuning flags to cmd.
func (o *layoutOpts) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configFile, "config", "", "TOML config file with layout parameters")
	cmd.Flags().StringVar(&o.rankDir, "rankdir", "", "rank direction: tb, bt, lr, rl")
	cmd.Flags().StringVar(&o.ranker, "ranker", "", "ranking algorithm: network-simplex, tight-tree, longest-path, none")
	cmd.Flags().StringVar(&o.acyclicer, "acyclicer", "", "cycle-breaking strategy: dfs, greedy")
	cmd.Flags().Float64Var(&o.nodeSep, "nodesep", 0, "minimum gap between adjacent nodes in a rank")
	cmd.Flags().Float64Var(&o.edgeSep, "edgesep", 0, "minimum gap between adjacent edge chains")
	cmd.Flags().Float64Var(&o.rankSep, "ranksep", 0, "gap between ranks")
	cmd.Flags().Float64Var(&o.marginX, "marginx", 0, "horizontal margin around the drawing")
	cmd.Flags().Float64Var(&o.marginY, "marginy", 0, "vertical margin around the drawing")
	cmd.Flags().StringVar(&o.align, "align", "", "force a single alignment: ul, ur, dl, dr")
	cmd.Flags().BoolVar(&o.noOrderHeuristic, "no-order-heuristic", false, "skip the adjacent-swap ordering refinement")
}

// apply overlays the config file and any explicitly set flags onto cfg.
func (o *layoutOpts) apply(cmd *cobra.Command, cfg *layout.Config) error {
	if o.configFile != "" {
		if err := applyConfigFile(o.configFile, cfg); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("rankdir") {
		cfg.RankDir = o.rankDir
	}
	if flags.Changed("ranker") {
		cfg.Ranker = o.ranker
	}
	if flags.Changed("acyclicer") {
		cfg.Acyclicer = o.acyclicer
	}
	if flags.Changed("nodesep") {
		cfg.NodeSep = o.nodeSep
	}
	if flags.Changed("edgesep") {
		cfg.EdgeSep = o.edgeSep
	}
	if flags.Changed("ranksep") {
		cfg.RankSep = o.rankSep
	}
	if flags.Changed("marginx") {
		cfg.MarginX = o.marginX
	}
	if flags.Changed("marginy") {
		cfg.MarginY = o.marginY
	}
	if flags.Changed("align") {
		cfg.Align = o.align
	}
	if flags.Changed("no-order-heuristic") {
		cfg.DisableOptimalOrderHeuristic = o.noOrderHeuristic
	}
	return nil
}

// layoutCommand creates the layout command for computing graph layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		opts   layoutOpts
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a layered layout for a directed graph",
		Long: `Compute a layered layout for a directed graph.

The layout command takes a graph.json file describing nodes, edges, and
optional clusters, runs the layout pipeline, and writes a layout.json file
with positions filled in. The output can be rendered to SVG with 'render'
or consumed by other tools.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.runLayout(cmd.Context(), cmd, args[0], &opts)
			if err != nil {
				return err
			}
			if output == "" {
				output = derivedPath(args[0], ".layout.json")
			}
			if err := graphio.WriteFile(g, output); err != nil {
				return err
			}
			c.Logger.Info("wrote layout", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	opts.registerFlags(cmd)

	return cmd
}

// runLayout reads a graph document, applies option overrides, and runs the
// layout pipeline on it.
func (c *CLI) runLayout(ctx context.Context, cmd *cobra.Command, path string, opts *layoutOpts) (*layout.Graph, error) {
	g, err := graphio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := opts.apply(cmd, g.Config); err != nil {
		return nil, err
	}

	start := time.Now()
	runner := pipeline.NewRunner(c.Logger, nil)
	if err := runner.Layout(ctx, g); err != nil {
		return nil, err
	}
	c.Logger.Infof("Laid out %d nodes (%s)", g.NodeCount(), time.Since(start).Round(time.Millisecond))
	return g, nil
}

// derivedPath replaces the extension of path with suffix.
func derivedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix
}
