package main

import (
	"context"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/weft/weft/provision"
	"go.uber.org/zap"
)

var applyCommand = &cobra.Command{
	Use:   "apply",
	Short: "Resolve the configured entities and apply them",
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

		runLogger := logger.With(
			zap.String("project", project),
			zap.String("environment", env),
			zap.String("run_id", ksuid.New().String()),
		)

		// Provisioning against the target cloud is performed by an external
		// engine; the built-in engine previews the plan.
		engine := &provision.DryRun{Logger: runLogger}

		assigned, err := engine.Apply(ctx, out)
		if err != nil {
			fatal(err)
		}

		// Persist assigned identifiers so later runs resolve against them.
		for kind, names := range assigned {
			for name, id := range names {
				if err := store.Put(ctx, project, env, kind, name, id); err != nil {
					fatal(err)
				}
			}
		}
	},
}

func init() {
	cmd.AddCommand(applyCommand)
}
