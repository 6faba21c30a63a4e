package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/weft/weft/config"
	"github.com/weft/weft/entity"
	awsprovider "github.com/weft/weft/provider/aws"
	"github.com/weft/weft/resolve"
	"github.com/weft/weft/storage"
	"github.com/weft/weft/storage/kvbackend"
	"go.uber.org/zap"
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		log.Fatalf("Get verbose flag: %v", err)
	}

	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatalf("Build logger: %v", err)
	}
	return logger
}

// loadCatalog loads the configuration document, selects the environment
// from the --environment flag, and builds the validated catalog.
func loadCatalog(cmd *cobra.Command) (project, env string, catalog *entity.Catalog, err error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", "", nil, err
	}
	env, err = cmd.Flags().GetString("environment")
	if err != nil {
		return "", "", nil, err
	}

	loader := &config.Loader{}
	doc, err := loader.Load(path)
	if err != nil {
		return "", "", nil, err
	}

	catalog, err = entity.NewCatalog(doc.Environment(env))
	if err != nil {
		return "", "", nil, err
	}

	project = doc.Project
	if project == "" {
		project = "default"
	}
	return project, env, catalog, nil
}

// openStore opens the identifier store at the default location. The caller
// must close the returned backend.
func openStore() (*storage.IDStore, *kvbackend.Bolt, error) {
	backend, err := kvbackend.NewBolt()
	if err != nil {
		return nil, nil, err
	}
	return &storage.IDStore{Backend: backend}, backend, nil
}

// newResolver wires the resolver with the AWS-backed collaborators.
func newResolver(logger *zap.Logger, ids resolve.IDSource) *resolve.Resolver {
	return &resolve.Resolver{
		Zones:  &awsprovider.ZoneDirectory{},
		Images: &awsprovider.ImageCatalog{},
		IDs:    ids,
		Logger: logger,
	}
}
