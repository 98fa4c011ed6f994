package tools

import (
	"recap/internal/artifact"
	"recap/internal/daterange"
)

var dailySections = []string{"meetings", "communications", "accomplishments", "tomorrow"}

// DailyInput is the argument set for generate_daily_summary.
type DailyInput struct {
	Date            string         `json:"date"`
	OutputFormat    string         `json:"output_format"`
	SaveToFile      *bool          `json:"save_to_file"`
	IncludeSections []string       `json:"include_sections"`
	CollectedData   *CollectedData `json:"collected_data"`
}

// DailySummary is the processed daily summary once collected data is
// supplied.
type DailySummary struct {
	Date     string         `json:"date"`
	Sections map[string]any `json:"sections"`
	HTML     string         `json:"html"`
	Markdown string         `json:"markdown"`
}

// DailyTemplate is the fill-in structure for one day.
type DailyTemplate struct {
	Date     string         `json:"date"`
	Display  string         `json:"display"`
	Sections map[string]any `json:"sections"`
}

// DailyResult is the generate_daily_summary payload.
type DailyResult struct {
	Success          bool          `json:"success"`
	Message          string        `json:"message"`
	Date             string        `json:"date"`
	Instructions     string        `json:"instructions"`
	Template         DailyTemplate `json:"template"`
	OutputFormat     string        `json:"output_format"`
	SaveToFile       bool          `json:"save_to_file"`
	Note             string        `json:"note"`
	Summary          *DailySummary `json:"summary,omitempty"`
	FilesSaved       []string      `json:"files_saved,omitempty"`
	GenerationTimeMS int64         `json:"generation_time_ms"`
}

func (h *Handler) generateDailySummary(in DailyInput) (any, error) {
	start := h.Now()

	// Single-day entry point: equal bounds, no ordering check.
	day, err := daterange.SingleDay(in.Date, h.today())
	if err != nil {
		return nil, err
	}
	date := day.Start

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
		sections = dailySections
	}

	result := &DailyResult{
		Success:      true,
		Message:      "Daily summary generation initiated. Please follow the data collection instructions below.",
		Date:         date,
		Instructions: h.inst.DailyCollection(date),
		Template:     buildDailyTemplate(date, sections),
		OutputFormat: outputFormat,
		SaveToFile:   saveToFile,
		Note:         "This tool provides instructions for the AI agent to collect today's data and generate a concise daily summary.",
	}

	if d := in.CollectedData; d != nil {
		result.Summary = &DailySummary{
			Date:     date,
			Sections: nonNilSections(d.Sections),
			HTML:     d.HTML,
			Markdown: d.Markdown,
		}
		if saveToFile {
			var files []string
			if outputFormat == "both" || outputFormat == "html" {
				path, err := h.store.Save(artifact.DailyFilename(date, "html"), d.HTML)
				if err != nil {
					return nil, err
				}
				files = append(files, path)
			}
			if outputFormat == "both" || outputFormat == "markdown" {
				path, err := h.store.Save(artifact.DailyFilename(date, "markdown"), d.Markdown)
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

func buildDailyTemplate(date string, sections []string) DailyTemplate {
	t := DailyTemplate{
		Date:     date,
		Display:  daterange.Display(date),
		Sections: map[string]any{},
	}
	for _, s := range sections {
		switch s {
		case "meetings":
			t.Sections["meetings"] = map[string]any{
				"total":        0,
				"hours":        0,
				"key_meetings": []any{},
				"outcomes":     []any{},
			}
		case "communications":
			t.Sections["communications"] = map[string]any{
				"slack_messages":    0,
				"important_threads": []any{},
				"emails":            0,
				"key_contacts":      []any{},
			}
		case "accomplishments":
			t.Sections["accomplishments"] = []any{"Key accomplishments and completed tasks"}
		case "tomorrow":
			t.Sections["tomorrow"] = map[string]any{
				"upcoming_meetings": []any{},
				"action_items":      []any{},
				"prep_needed":       []any{},
			}
		}
	}
	return t
}
