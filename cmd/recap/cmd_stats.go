package main

import (
	"github.com/spf13/cobra"
)

var (
	statsDaysBack  int
	statsStartDate string
	statsEndDate   string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print quick-stats collection instructions for a period",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsDaysBack, "days-back", 0, "Days back from today (default from config)")
	statsCmd.Flags().StringVar(&statsStartDate, "start-date", "", "Period start (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsEndDate, "end-date", "", "Period end (YYYY-MM-DD)")
}

func runStats(cmd *cobra.Command, _ []string) error {
	_, handler, err := setup()
	if err != nil {
		return err
	}
	args := map[string]any{}
	if statsDaysBack > 0 {
		args["days_back"] = statsDaysBack
	}
	if statsStartDate != "" {
		args["start_date"] = statsStartDate
	}
	if statsEndDate != "" {
		args["end_date"] = statsEndDate
	}
	return printToolResult(cmd, handler, "get_quick_stats", args)
}
