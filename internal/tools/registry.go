package tools

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

const datePattern = `^\d{4}-\d{2}-\d{2}$`

// Definition is one advertised tool: name, description, and declarative
// input schema. The table is assembled once and read-only afterwards;
// schemas describe inputs for the caller, while argument handling is
// enforced per tool in this package.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

var definitions = []Definition{
	{
		Name:        "generate_daily_summary",
		Description: "Generate a concise daily productivity summary from today's Slack, Calendar, and Gmail activity. Perfect for end-of-day wrap-ups and next-day planning.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"date": {
					Type:        "string",
					Description: "Date to summarize in YYYY-MM-DD format (default: today)",
					Pattern:     datePattern,
				},
				"output_format": {
					Type:        "string",
					Enum:        []any{"both", "html", "markdown", "json"},
					Description: "Output format(s) to generate (default: both)",
					Default:     raw(`"both"`),
				},
				"save_to_file": {
					Type:        "boolean",
					Description: "Whether to save output to summaries directory (default: true)",
					Default:     raw(`true`),
				},
				"include_sections": {
					Type: "array",
					Items: &jsonschema.Schema{
						Type: "string",
						Enum: []any{"meetings", "communications", "accomplishments", "tomorrow"},
					},
					Description: "Sections to include (default: all)",
				},
			},
		},
	},
	{
		Name:        "generate_weekly_summary",
		Description: "Generate a comprehensive weekly productivity summary from Slack, Calendar, and Gmail data. Returns structured summary with optional HTML/Markdown output.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"days_back": {
					Type:        "integer",
					Description: "Number of days to analyze (default: 7)",
					Default:     raw(`7`),
					Minimum:     fptr(1),
					Maximum:     fptr(90),
				},
				"start_date": {
					Type:        "string",
					Description: "Optional start date in YYYY-MM-DD format (overrides days_back)",
					Pattern:     datePattern,
				},
				"end_date": {
					Type:        "string",
					Description: "Optional end date in YYYY-MM-DD format (default: today)",
					Pattern:     datePattern,
				},
				"output_format": {
					Type:        "string",
					Enum:        []any{"both", "html", "markdown", "json"},
					Description: "Output format(s) to generate (default: both)",
					Default:     raw(`"both"`),
				},
				"save_to_file": {
					Type:        "boolean",
					Description: "Whether to save output to summaries directory (default: true)",
					Default:     raw(`true`),
				},
				"include_sections": {
					Type: "array",
					Items: &jsonschema.Schema{
						Type: "string",
						Enum: []any{"executive", "time", "achievements", "communication", "todos", "insights", "metrics"},
					},
					Description: "Sections to include (default: all)",
				},
			},
		},
	},
	{
		Name:        "list_summaries",
		Description: "List previously generated weekly summaries from the summaries directory.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"limit": {
					Type:        "integer",
					Description: "Maximum number of summaries to return (default: 10)",
					Default:     raw(`10`),
					Minimum:     fptr(1),
					Maximum:     fptr(100),
				},
				"sort": {
					Type:        "string",
					Enum:        []any{"newest", "oldest"},
					Description: "Sort order (default: newest)",
					Default:     raw(`"newest"`),
				},
				"format": {
					Type:        "string",
					Enum:        []any{"all", "html", "markdown"},
					Description: "Filter by format (default: all)",
					Default:     raw(`"all"`),
				},
			},
		},
	},
	{
		Name:        "get_summary",
		Description: "Retrieve a specific weekly summary by filename or date range.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"filename": {
					Type:        "string",
					Description: "Filename of the summary to retrieve",
				},
				"start_date": {
					Type:        "string",
					Description: "Start date to find summary (YYYY-MM-DD)",
					Pattern:     datePattern,
				},
				"end_date": {
					Type:        "string",
					Description: "End date to find summary (YYYY-MM-DD)",
					Pattern:     datePattern,
				},
				"format": {
					Type:        "string",
					Enum:        []any{"html", "markdown", "both"},
					Description: "Format to retrieve (default: both)",
					Default:     raw(`"both"`),
				},
				"include_content": {
					Type:        "boolean",
					Description: "Include full content or just metadata (default: true)",
					Default:     raw(`true`),
				},
			},
		},
	},
	{
		Name:        "get_quick_stats",
		Description: "Get quick productivity metrics (Slack, Calendar, Gmail) without generating a full summary. Fast lightweight query.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"days_back": {
					Type:        "integer",
					Description: "Number of days to analyze (default: 7)",
					Default:     raw(`7`),
					Minimum:     fptr(1),
					Maximum:     fptr(90),
				},
				"start_date": {
					Type:        "string",
					Description: "Optional start date in YYYY-MM-DD format",
					Pattern:     datePattern,
				},
				"end_date": {
					Type:        "string",
					Description: "Optional end date in YYYY-MM-DD format",
					Pattern:     datePattern,
				},
			},
		},
	},
	{
		Name:        "compare_periods",
		Description: "Compare productivity statistics between two time periods. Generates comparison reports in HTML and Markdown formats showing trends and changes.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"period1": {
					Type:        "object",
					Description: "First period to compare",
					Properties:  periodProperties(),
					Required:    []string{"start_date", "end_date"},
				},
				"period2": {
					Type:        "object",
					Description: "Second period to compare",
					Properties:  periodProperties(),
					Required:    []string{"start_date", "end_date"},
				},
				"metrics": {
					Type: "array",
					Items: &jsonschema.Schema{
						Type: "string",
						Enum: []any{"meetings", "slack", "email", "focus_time", "all"},
					},
					Description: "Metrics to compare (default: all)",
					Default:     raw(`["all"]`),
				},
				"output_format": {
					Type:        "string",
					Enum:        []any{"both", "html", "markdown"},
					Description: "Output format(s) to generate (default: both)",
					Default:     raw(`"both"`),
				},
				"save_to_file": {
					Type:        "boolean",
					Description: "Whether to save comparison to summaries directory (default: true)",
					Default:     raw(`true`),
				},
			},
			Required: []string{"period1", "period2"},
		},
	},
}

// Definitions returns the static tool table.
func Definitions() []Definition {
	return definitions
}

// Names returns the tool names in registration order.
func Names() []string {
	names := make([]string, len(definitions))
	for i, d := range definitions {
		names[i] = d.Name
	}
	return names
}

func periodProperties() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"start_date": {Type: "string", Pattern: datePattern},
		"end_date":   {Type: "string", Pattern: datePattern},
	}
}

func fptr(v float64) *float64 { return &v }

func raw(s string) json.RawMessage { return json.RawMessage(s) }
