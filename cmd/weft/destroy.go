package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/weft/weft/provision"
)

var destroyCommand = &cobra.Command{
	Use:   "destroy",
	Short: "Destroy the entities resolved for an environment",
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

		engine := &provision.DryRun{Logger: logger}
		if err := engine.Destroy(ctx, out); err != nil {
			fatal(err)
		}

		for _, ref := range out.Refs() {
			if err := store.Delete(ctx, project, env, ref.Kind, ref.Name); err != nil {
				fatal(err)
			}
		}
	},
}

func init() {
	cmd.AddCommand(destroyCommand)
}
