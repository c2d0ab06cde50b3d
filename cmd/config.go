package cmd

import "github.com/spf13/cobra"

// configCmd groups the config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Work with the Vigil engine configuration",
}

func init() {
	rootCmd.AddCommand(configCmd)
}
