package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with ldflags when compiling.
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	cmd.AddCommand(versionCommand)
}
