package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/api"
	"github.com/vigil-sh/vigil/internal/core"
	"github.com/vigil-sh/vigil/internal/decision"
)

// decideCmd represents the decide command
var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Evaluate one access request",
	Long: `Evaluates whether the given viewer role may see the owner's data under
the given context. Runs locally against a config file (--config) or
against a remote server (--server).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roleStr, _ := cmd.Flags().GetString("role")
		ownerID, _ := cmd.Flags().GetString("owner")
		hour, _ := cmd.Flags().GetInt("hour")
		locationStr, _ := cmd.Flags().GetString("location")

		if f.ConfigPath != "" {
			return decideLocally(cmd, roleStr, ownerID, hour, locationStr)
		}
		return decideRemote(cmd, roleStr, ownerID, hour, locationStr)
	},
}

func decideLocally(cmd *cobra.Command, roleStr, ownerID string, hour int, locationStr string) error {
	role, err := core.ParseRole(roleStr)
	if err != nil {
		return err
	}
	location, err := core.ParseLocation(locationStr)
	if err != nil {
		return err
	}

	components, err := f.BuildComponents(nil)
	if err != nil {
		return err
	}
	defer func() { _ = components.Auditor.Close() }()

	result, err := components.Service.Decide(cmd.Context(), decision.Request{
		Viewer:   role,
		OwnerID:  ownerID,
		Hour:     hour,
		Location: location,
	})
	if err != nil {
		return err
	}

	printDecision(result)
	return nil
}

func decideRemote(cmd *cobra.Command, roleStr, ownerID string, hour int, locationStr string) error {
	cli, err := f.GetClient()
	if err != nil {
		return err
	}

	result, _, err := cli.Decide(cmd.Context(), api.DecidePayload{
		ViewerRole: roleStr,
		OwnerID:    ownerID,
		Hour:       hour,
		Location:   locationStr,
	})
	if err != nil {
		return err
	}

	printDecision(result)
	return nil
}

func printDecision(result *core.AccessDecision) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	verdict := red("DENIED")
	if result.Granted {
		verdict = green("GRANTED")
	}

	fmt.Printf("\n  %s: %s  %s\n", bold("Decision"), verdict, faint("(%s)", result.Reason))

	if len(result.VisibleCategories) > 0 {
		fmt.Printf("  %s:", bold("Visible"))
		for _, category := range result.VisibleCategories {
			fmt.Printf(" %s", category)
		}
		fmt.Println()
	}

	if insight := result.Insight; insight != nil {
		fmt.Printf("  %s:\n", bold("Insight"))
		if insight.MaxSpeedKmh != nil {
			fmt.Printf("    max speed:  %d km/h\n", *insight.MaxSpeedKmh)
		}
		if insight.AvgHeartRateBpm != nil {
			fmt.Printf("    avg hr:     %d bpm\n", *insight.AvgHeartRateBpm)
		}
		if insight.Guidance != "" {
			state := green(insight.Guidance)
			if insight.HighStress {
				state = red(insight.Guidance)
			}
			fmt.Printf("    mental:     %s\n", state)
		}
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(decideCmd)

	decideCmd.Flags().String("role", "", "Viewer role (athlete, youth_athlete, coach, commercial_partner, compliance_officer)")
	decideCmd.Flags().String("owner", "", "Target data owner ID")
	decideCmd.Flags().Int("hour", 12, "Hour of day (0-23)")
	decideCmd.Flags().String("location", string(core.LocationTrainingGround), "Location (training_ground, home, school_public)")
	f.bindConfigFlag(decideCmd.Flags())

	_ = decideCmd.MarkFlagRequired("role")
	_ = decideCmd.MarkFlagRequired("owner")
}
