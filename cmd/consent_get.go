package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/core"
)

// consentGetCmd represents the consent get command
var consentGetCmd = &cobra.Command{
	Use:   "get <owner-id>",
	Short: "Show the owner's consent profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID := args[0]

		var profile core.ConsentProfile

		if f.ConfigPath != "" {
			components, err := f.BuildComponents(nil)
			if err != nil {
				return err
			}
			defer func() { _ = components.Auditor.Close() }()

			p, err := components.Service.ReadConsent(cmd.Context(), ownerID)
			if err != nil {
				return err
			}
			profile = p
		} else {
			cli, err := f.GetClient()
			if err != nil {
				return err
			}
			p, _, err := cli.GetConsent(cmd.Context(), ownerID)
			if err != nil {
				return err
			}
			profile = *p
		}

		printProfile(profile)
		return nil
	},
}

func printProfile(profile core.ConsentProfile) {
	fmt.Printf("\n  %s: %s\n", bold("Owner"), profile.OwnerID)
	if profile.IsYouth {
		fmt.Printf("  %s\n", faint("youth account: protective governance active"))
	}
	fmt.Printf("  share technical:   %v\n", profile.ShareTechnical)
	fmt.Printf("  share medical:     %v\n", profile.ShareMedical)
	fmt.Printf("  share commercial:  %v\n", profile.ShareCommercial)
	fmt.Printf("  quiet hours:       %02d:00 - %02d:00\n\n", profile.QuietHoursStart, profile.QuietHoursEnd)
}

func init() {
	consentCmd.AddCommand(consentGetCmd)

	f.bindConfigFlag(consentGetCmd.Flags())
}
