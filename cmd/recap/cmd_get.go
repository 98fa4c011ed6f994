package main

import (
	"github.com/spf13/cobra"
)

var (
	getFilename  string
	getStartDate string
	getEndDate   string
	getFormat    string
	getNoContent bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Retrieve a stored summary by filename or date range",
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVar(&getFilename, "filename", "", "Exact summary filename")
	getCmd.Flags().StringVar(&getStartDate, "start-date", "", "Period start (YYYY-MM-DD)")
	getCmd.Flags().StringVar(&getEndDate, "end-date", "", "Period end (YYYY-MM-DD)")
	getCmd.Flags().StringVar(&getFormat, "format", "both", "Content format (html, markdown, both)")
	getCmd.Flags().BoolVar(&getNoContent, "no-content", false, "Return metadata only")
}

func runGet(cmd *cobra.Command, _ []string) error {
	_, handler, err := setup()
	if err != nil {
		return err
	}
	args := map[string]any{
		"format":          getFormat,
		"include_content": !getNoContent,
	}
	if getFilename != "" {
		args["filename"] = getFilename
	}
	if getStartDate != "" {
		args["start_date"] = getStartDate
	}
	if getEndDate != "" {
		args["end_date"] = getEndDate
	}
	return printToolResult(cmd, handler, "get_summary", args)
}
