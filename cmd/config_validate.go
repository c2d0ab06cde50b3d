package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the engine configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := f.LoadConfig()
		if err != nil {
			return err
		}

		log.Info().
			Int("owners", len(cfg.Owners)).
			Int("rules", len(cfg.Rules)).
			Msg("configuration is valid")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)

	f.bindConfigFlag(configValidateCmd.Flags())
}
