package cli

import (
	"github.com/spf13/cobra"

	"github.com/strataviz/strata/pkg/render/svg"
)

// renderCommand creates the render command for producing SVG drawings.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		opts   layoutOpts
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a directed graph to SVG",
		Long: `Render a directed graph to SVG.

The render command runs the layout pipeline on a graph.json file and draws
the result as an SVG: rounded rectangles for nodes, dashed outlines for
clusters, and polylines with arrowheads for edges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.runLayout(cmd.Context(), cmd, args[0], &opts)
			if err != nil {
				return err
			}
			if output == "" {
				output = derivedPath(args[0], ".svg")
			}
			if err := svg.RenderFile(g, output); err != nil {
				return err
			}
			c.Logger.Info("wrote drawing", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	opts.registerFlags(cmd)

	return cmd
}
