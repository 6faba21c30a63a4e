package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:           "weft",
	Short:         "Resolve declarative infrastructure configuration",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cmd.PersistentFlags().StringP("config", "c", ".", "Configuration file or directory")
	cmd.PersistentFlags().StringP("environment", "e", "default", "Environment to use")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
