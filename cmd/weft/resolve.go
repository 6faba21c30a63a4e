package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCommand = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the configured entities and print the result",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		defer logger.Sync() // nolint: errcheck

		project, env, catalog, err := loadCatalog(cmd)
		if err != nil {
			fatal(err)
		}

		store, backend, err := openStore()
		if err != nil {
			fatal(err)
		}
		defer backend.Close()

		ctx := signalContext(context.Background())

		ids, err := store.Source(ctx, project, env)
		if err != nil {
			fatal(err)
		}

		out, err := newResolver(logger, ids).Resolve(ctx, env, catalog)
		if err != nil {
			fatal(err)
		}

		j, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(j))
	},
}

func init() {
	cmd.AddCommand(resolveCommand)
}
