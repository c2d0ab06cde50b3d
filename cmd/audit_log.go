package cmd

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/pkg/client"
)

// auditLogCmd represents the audit log command
var auditLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Retrieve and display audit log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
		filterViewer, _ := cmd.Flags().GetString("viewer")
		filterOwner, _ := cmd.Flags().GetString("owner")
		filterStatus, _ := cmd.Flags().GetString("status")

		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		log.Info().Msg("Fetching audit log...")
		entries, _, err := cli.ListAudits(cmd.Context(), client.ListAuditsOpts{
			Limit:  uint(limit),
			Viewer: filterViewer,
			Owner:  filterOwner,
			Status: filterStatus,
		})
		if err != nil {
			return err
		}

		log.Info().Msgf("Retrieved %d audit entries", len(entries))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"Seq", "Time", "Action", "Viewer", "Owner", "Status", "Details",
		})

		for _, e := range entries {
			t.AppendRow(table.Row{
				e.Seq,
				e.Time.Format(time.RFC3339),
				e.Action,
				e.Viewer,
				e.Owner,
				e.Status,
				truncate(e.Details, 45),
			})
		}

		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}

func init() {
	auditCmd.AddCommand(auditLogCmd)

	auditLogCmd.Flags().IntP("limit", "n", 25, "Number of audit entries to retrieve")
	auditLogCmd.Flags().String("viewer", "", "Filter by viewer role")
	auditLogCmd.Flags().String("owner", "", "Filter by data owner")
	auditLogCmd.Flags().String("status", "", "Filter by status (GRANTED, DENIED)")
}
