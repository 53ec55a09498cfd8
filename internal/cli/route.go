package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRouteCmd() *cobra.Command {
	var opts queryOpts
	var to string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the shortest path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := loadRunner(cmd.Context(), opts.network)
			if err != nil {
				return err
			}
			p := opts.params()
			p.To = to

			res, err := runner.Route(p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, res)
			}
			if !res.Found {
				printFailure(w, "%s is not reachable from %s", res.To, res.From)
				return nil
			}
			printSuccess(w, "%s", strings.Join(res.Nodes, " "+iconArrow+" "))
			printKeyValue(w, "weight", fmtDistance(res.Weight))
			printKeyValue(w, "hops", strconv.Itoa(len(res.Nodes)-1))
			printKeyValue(w, "expanded", strconv.Itoa(res.Expanded))
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&to, "to", "", "destination node")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
