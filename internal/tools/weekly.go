package tools

import (
	"recap/internal/artifact"
	"recap/internal/daterange"
)

var weeklySections = []string{"executive", "time", "achievements", "communication", "todos", "insights", "metrics"}

// WeeklyInput is the argument set for generate_weekly_summary.
type WeeklyInput struct {
	DaysBack        int            `json:"days_back"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	OutputFormat    string         `json:"output_format"`
	SaveToFile      *bool          `json:"save_to_file"`
	IncludeSections []string       `json:"include_sections"`
	CollectedData   *CollectedData `json:"collected_data"`
}

// CollectedData is the synthesized material the agent hands back on a
// second call, after following the collection instructions.
type CollectedData struct {
	ExecutiveSummary string         `json:"executive_summary"`
	Sections         map[string]any `json:"sections"`
	HTML             string         `json:"html"`
	Markdown         string         `json:"markdown"`
}

// WeeklySummary is the processed summary included in the payload once
// collected data is supplied.
type WeeklySummary struct {
	ExecutiveSummary string         `json:"executive_summary"`
	Sections         map[string]any `json:"sections"`
	HTML             string         `json:"html"`
	Markdown         string         `json:"markdown"`
}

// Template is the fill-in structure the agent populates: the period plus
// one skeleton entry per requested section.
type Template struct {
	Period   TemplatePeriod `json:"period"`
	Sections map[string]any `json:"sections"`
}

// TemplatePeriod carries the range with a human display form.
type TemplatePeriod struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Days    int    `json:"days"`
	Display string `json:"display"`
}

// WeeklyResult is the generate_weekly_summary payload.
type WeeklyResult struct {
	Success          bool           `json:"success"`
	Message          string         `json:"message"`
	Period           Period         `json:"period"`
	Instructions     string         `json:"instructions"`
	Template         Template       `json:"template"`
	OutputFormat     string         `json:"output_format"`
	SaveToFile       bool           `json:"save_to_file"`
	Note             string         `json:"note"`
	Summary          *WeeklySummary `json:"summary,omitempty"`
	FilesSaved       []string       `json:"files_saved,omitempty"`
	GenerationTimeMS int64          `json:"generation_time_ms"`
}

func (h *Handler) generateWeeklySummary(in WeeklyInput) (any, error) {
	start := h.Now()

	daysBack := in.DaysBack
	if daysBack <= 0 {
		daysBack = h.cfg.Defaults.DaysBack
	}
	r, err := daterange.Resolve(daterange.Params{
		DaysBack:  daysBack,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}, h.today())
	if err != nil {
		return nil, err
	}

	outputFormat := in.OutputFormat
	if outputFormat == "" {
		outputFormat = h.cfg.Defaults.OutputFormat
	}
	saveToFile := h.cfg.Output.AutoSave
	if in.SaveToFile != nil {
		saveToFile = *in.SaveToFile
	}
	sections := in.IncludeSections
	if len(sections) == 0 {
		sections = weeklySections
	}

	result := &WeeklyResult{
		Success:      true,
		Message:      "Weekly summary generation initiated. Please follow the data collection instructions below.",
		Period:       Period{Start: r.Start, End: r.End, Days: r.Days},
		Instructions: h.inst.WeeklyCollection(r.Start, r.End),
		Template:     buildWeeklyTemplate(r, sections),
		OutputFormat: outputFormat,
		SaveToFile:   saveToFile,
		Note: "This tool provides instructions for the AI agent to collect data and generate the summary. " +
			"The AI will make multiple MCP calls to gather Slack, Calendar, and Gmail data, then synthesize it into a comprehensive summary.",
	}

	if d := in.CollectedData; d != nil {
		result.Summary = &WeeklySummary{
			ExecutiveSummary: d.ExecutiveSummary,
			Sections:         nonNilSections(d.Sections),
			HTML:             d.HTML,
			Markdown:         d.Markdown,
		}
		if saveToFile {
			var files []string
			if outputFormat == "both" || outputFormat == "html" {
				path, err := h.store.Save(artifact.Filename(r.Start, r.End, "html"), d.HTML)
				if err != nil {
					return nil, err
				}
				files = append(files, path)
			}
			if outputFormat == "both" || outputFormat == "markdown" {
				path, err := h.store.Save(artifact.Filename(r.Start, r.End, "markdown"), d.Markdown)
				if err != nil {
					return nil, err
				}
				files = append(files, path)
			}
			result.FilesSaved = files
		}
	}

	result.GenerationTimeMS = elapsedMS(start)
	return result, nil
}

func buildWeeklyTemplate(r daterange.Range, sections []string) Template {
	t := Template{
		Period: TemplatePeriod{
			Start:   r.Start,
			End:     r.End,
			Days:    r.Days,
			Display: displayRange(r.Start, r.End),
		},
		Sections: map[string]any{},
	}
	for _, s := range sections {
		switch s {
		case "executive":
			t.Sections["executive_summary"] = "High-level overview of the week in 2-3 sentences"
		case "time":
			t.Sections["time_allocation"] = map[string]any{
				"total_meeting_hours":    0,
				"total_events":           0,
				"average_daily_meetings": 0,
				"focus_time_hours":       0,
				"meeting_breakdown":      []any{},
			}
		case "achievements":
			t.Sections["achievements"] = []any{"List of key wins and accomplishments"}
		case "communication":
			t.Sections["communication_patterns"] = map[string]any{
				"slack": map[string]any{
					"total_messages":       0,
					"top_channels":         []any{},
					"threads_participated": 0,
				},
				"email": map[string]any{
					"total_sent":     0,
					"total_received": 0,
					"top_contacts":   []any{},
				},
			}
		case "todos":
			t.Sections["outstanding_todos"] = []any{"Action items that need follow-up"}
		case "insights":
			t.Sections["insights"] = []any{"Key learnings and observations"}
		case "metrics":
			t.Sections["metrics"] = map[string]any{
				"productivity_score":    0,
				"collaboration_score":   0,
				"focus_time_percentage": 0,
			}
		}
	}
	return t
}

func nonNilSections(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
