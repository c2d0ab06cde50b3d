package cmd

import "github.com/spf13/cobra"

// consentCmd groups the consent subcommands
var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Read and modify a data owner's consent settings",
}

func init() {
	rootCmd.AddCommand(consentCmd)
}
