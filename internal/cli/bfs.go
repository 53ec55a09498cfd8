package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhartert/spsearch/internal/render"
)

func newBFSCmd() *cobra.Command {
	var opts queryOpts
	var maxDistance float64
	var dotPath, svgPath string

	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Build the traversal tree of the nodes within a distance of a node",
		Long: `Build the traversal tree of the nodes within a distance of a node.

Nodes are listed in the order their distance became final. Use --modus hops
to bound the number of edges instead of the total weight.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := loadRunner(ctx, opts.network)
			if err != nil {
				return err
			}
			p := opts.params()
			p.MaxDistance = maxDistance

			res, err := runner.Tree(p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				if err := printJSON(w, res); err != nil {
					return err
				}
			} else {
				printTitle(w, fmt.Sprintf("%d nodes within %g of %s", len(res.Nodes), res.MaxDistance, res.From))
				for _, n := range res.Nodes {
					value := fmtDistance(n.Distance)
					if n.Parent != "" {
						value += styleDim.Render(" via " + n.Parent)
					}
					printKeyValue(w, n.Node, value)
				}
			}

			if dotPath == "" && svgPath == "" {
				return nil
			}
			dot := render.TreeDOT(res.Tree)
			if dotPath != "" {
				if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
					return err
				}
				printFile(w, dotPath)
			}
			if svgPath != "" {
				prog := newProgress(loggerFromContext(ctx))
				svg, err := render.RenderSVG(ctx, dot)
				if err != nil {
					return err
				}
				if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
					return err
				}
				prog.done("Rendered " + svgPath)
				printFile(w, svgPath)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().Float64Var(&maxDistance, "max", 0, "maximum distance (inclusive)")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the tree as Graphviz DOT to this file")
	cmd.Flags().StringVar(&svgPath, "svg", "", "render the tree as SVG to this file")
	_ = cmd.MarkFlagRequired("max")

	return cmd
}
