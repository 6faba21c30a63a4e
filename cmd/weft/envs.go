package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/weft/weft/config"
)

var envsCommand = &cobra.Command{
	Use:   "envs",
	Short: "List the environments defined in the configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			fatal(err)
		}

		loader := &config.Loader{}
		doc, err := loader.Load(path)
		if err != nil {
			fatal(err)
		}

		for _, name := range doc.EnvironmentNames() {
			fmt.Println(name)
		}
	},
}

func init() {
	cmd.AddCommand(envsCommand)
}
