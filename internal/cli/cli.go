// Package cli implements the spsearch command-line interface.
//
// Commands load a network file (TOML or Repetita, see package netfile) and
// run one query against it:
//   - route: shortest path between two nodes
//   - reach: distance to every node within a bound
//   - bfs: traversal tree within a bound, optionally rendered as DOT or SVG
//   - serve: answer the same queries over HTTP
//   - info: summary of a network
//
// All commands support --verbose (-v) for debug-level logging, which includes
// the trace of the search engine. Loggers are passed through context.Context.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rhartert/spsearch/internal/netfile"
	"github.com/rhartert/spsearch/internal/query"
)

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the spsearch command line with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "spsearch",
		Short:         "spsearch runs shortest path queries on networks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRouteCmd())
	root.AddCommand(newReachCmd())
	root.AddCommand(newBFSCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newInfoCmd())

	return root
}

// queryOpts holds the flags shared by the query commands.
type queryOpts struct {
	network string
	from    string
	weight  string
	modus   string
	turns   bool
	avoid   []string
	json    bool
}

func (o *queryOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.network, "network", "n", "", "network file (.toml or Repetita .graph)")
	cmd.Flags().StringVar(&o.from, "from", "", "origin node")
	cmd.Flags().StringVarP(&o.weight, "weight", "w", "", "weight name or index (default: first weight)")
	cmd.Flags().StringVarP(&o.modus, "modus", "m", "", "cost of an edge: weight (default), hops, hops-weighted")
	cmd.Flags().BoolVar(&o.turns, "turns", false, "apply the turn restrictions of the network")
	cmd.Flags().StringSliceVar(&o.avoid, "avoid", nil, "nodes that cannot be entered (comma-separated)")
	cmd.Flags().BoolVar(&o.json, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("network")
	_ = cmd.MarkFlagRequired("from")
}

func (o *queryOpts) params() query.Params {
	return query.Params{
		From:   o.from,
		Weight: o.weight,
		Modus:  o.modus,
		Turns:  o.turns,
		Avoid:  o.avoid,
	}
}

// loadRunner loads the network file and returns a runner logging to the
// logger of ctx.
func loadRunner(ctx context.Context, path string) (*query.Runner, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	net, err := netfile.Load(path)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %s: %d nodes, %d edges", net.Name, net.Graph.Order(), net.Graph.Size()))
	return query.NewRunner(net, logger), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
