package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhartert/spsearch/internal/netfile"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print a summary of a network file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := netfile.Load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, net.Name)
			printKeyValue(w, "nodes", strconv.Itoa(net.Graph.Order()))
			printKeyValue(w, "edges", strconv.Itoa(net.Graph.Size()))
			printKeyValue(w, "weights", strings.Join(net.WeightNames, ", "))
			printKeyValue(w, "turns", strconv.Itoa(len(net.Turns)))
			return nil
		},
	}
}
