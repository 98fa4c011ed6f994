package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"recap/internal/tools"
)

var (
	listLimit  int
	listSort   string
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored weekly summaries",
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 10, "Maximum number of entries")
	listCmd.Flags().StringVar(&listSort, "sort", "newest", "Sort order (newest or oldest)")
	listCmd.Flags().StringVar(&listFormat, "format", "all", "Filter by format (all, html, markdown)")
}

func runList(cmd *cobra.Command, _ []string) error {
	_, handler, err := setup()
	if err != nil {
		return err
	}
	return printToolResult(cmd, handler, "list_summaries", map[string]any{
		"limit":  listLimit,
		"sort":   listSort,
		"format": listFormat,
	})
}

// printToolResult dispatches one tool call and writes its payload as
// indented JSON, the same shape MCP clients receive.
func printToolResult(cmd *cobra.Command, handler *tools.Handler, name string, args map[string]any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}
	result, err := handler.Dispatch(cmd.Context(), name, raw)
	if err != nil {
		return err
	}
	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return nil
}
