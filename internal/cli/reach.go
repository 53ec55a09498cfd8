package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReachCmd() *cobra.Command {
	var opts queryOpts
	var maxDistance float64

	cmd := &cobra.Command{
		Use:   "reach",
		Short: "List the nodes within a distance of a node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := loadRunner(cmd.Context(), opts.network)
			if err != nil {
				return err
			}
			p := opts.params()
			p.MaxDistance = maxDistance

			res, err := runner.Reach(p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, res)
			}
			printTitle(w, fmt.Sprintf("%d nodes within %g of %s", len(res.Nodes), res.MaxDistance, res.From))
			for _, n := range res.Nodes {
				printKeyValue(w, n.Node, fmtDistance(n.Distance))
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().Float64Var(&maxDistance, "max", 0, "maximum distance (inclusive)")
	_ = cmd.MarkFlagRequired("max")

	return cmd
}
