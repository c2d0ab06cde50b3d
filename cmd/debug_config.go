package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// debugConfigCmd dumps the parsed engine configuration, including the
// derived consent profiles, for troubleshooting rule setups.
var debugConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Dump the parsed engine configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := f.LoadConfig()
		if err != nil {
			return err
		}

		spew.Dump(cfg)
		for _, owner := range cfg.Owners {
			spew.Dump(owner.Profile())
		}
		return nil
	},
}

func init() {
	debugCmd.AddCommand(debugConfigCmd)

	f.bindConfigFlag(debugConfigCmd.Flags())
}
