package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/core"
)

// consentSetCmd represents the consent set command
var consentSetCmd = &cobra.Command{
	Use:   "set <owner-id> <field> <value>",
	Short: "Write one consent field",
	Long: `Writes one field of the owner's consent profile. Share fields take
true/false; quiet-hour fields take an hour (0-23). Governance-locked
fields (commercial sharing and quiet hours for youth owners) are
rejected.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID, fieldStr, valueStr := args[0], args[1], args[2]

		field, err := core.ParseConsentField(fieldStr)
		if err != nil {
			return err
		}
		value, err := parseFieldValue(field, valueStr)
		if err != nil {
			return err
		}

		if f.ConfigPath != "" {
			components, err := f.BuildComponents(nil)
			if err != nil {
				return err
			}
			defer func() { _ = components.Auditor.Close() }()

			if err := components.Service.WriteConsent(cmd.Context(), ownerID, field, value); err != nil {
				return err
			}
			profile, err := components.Service.ReadConsent(cmd.Context(), ownerID)
			if err != nil {
				return err
			}
			log.Info().Msg("consent updated")
			printProfile(profile)
			return nil
		}

		cli, err := f.GetClient()
		if err != nil {
			return err
		}
		profile, _, err := cli.SetConsent(cmd.Context(), ownerID, fieldStr, value)
		if err != nil {
			return err
		}
		log.Info().Msg("consent updated")
		printProfile(*profile)
		return nil
	},
}

func parseFieldValue(field core.ConsentField, valueStr string) (any, error) {
	switch field {
	case core.FieldQuietHoursStart, core.FieldQuietHoursEnd:
		hour, err := strconv.Atoi(valueStr)
		if err != nil {
			return nil, fmt.Errorf("field %q expects an hour (0-23): %w", field, err)
		}
		return hour, nil
	default:
		b, err := strconv.ParseBool(valueStr)
		if err != nil {
			return nil, fmt.Errorf("field %q expects true/false: %w", field, err)
		}
		return b, nil
	}
}

func init() {
	consentCmd.AddCommand(consentSetCmd)

	f.bindConfigFlag(consentSetCmd.Flags())
}
