package cmd

import "github.com/spf13/cobra"

// auditCmd groups the audit subcommands
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the decision ledger",
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
