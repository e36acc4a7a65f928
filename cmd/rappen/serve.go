package main

import (
	"github.com/rappen-dev/rappen/internal/importer"
	"github.com/rappen-dev/rappen/internal/server"
	"github.com/rappen-dev/rappen/internal/zkb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve exposes uploads, transaction queries, summaries, categorization,
and settings over an HTTP JSON API.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categorizer := newCategorizer()
			imp := importer.New(zkb.NewParser(categorizer), store)
			srv := server.New(store, categorizer, imp)

			return srv.Serve(ctx, viper.GetString("server.addr"))
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
