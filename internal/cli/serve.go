package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rhartert/spsearch/internal/server"
)

func newServeCmd() *cobra.Command {
	var network, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer route, reach and bfs queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := loadRunner(ctx, network)
			if err != nil {
				return err
			}
			s := server.New(runner, loggerFromContext(ctx))
			if err := server.ListenAndServe(ctx, addr, s); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "network file (.toml or Repetita .graph)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	_ = cmd.MarkFlagRequired("network")

	return cmd
}
