package cmd

import "github.com/fatih/color"

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintfFunc()
)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
