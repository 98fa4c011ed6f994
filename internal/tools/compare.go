package tools

import (
	"fmt"
	"strconv"

	"recap/internal/artifact"
	"recap/internal/daterange"
	"recap/internal/toolerr"
)

// comparedMetrics are the stat keys changes are computed for, with the
// unit suffix attached to each delta.
var comparedMetrics = []struct {
	key  string
	unit string
}{
	{"meeting_hours", " hours"},
	{"slack_messages", " messages"},
	{"emails_sent", " emails"},
	{"focus_time_hours", " hours"},
}

// CompareInput is the argument set for compare_periods.
type CompareInput struct {
	Period1        *PeriodInput    `json:"period1"`
	Period2        *PeriodInput    `json:"period2"`
	Metrics        []string        `json:"metrics"`
	OutputFormat   string          `json:"output_format"`
	SaveToFile     *bool           `json:"save_to_file"`
	ComparisonData *ComparisonData `json:"comparison_data"`
}

// PeriodInput is one period boundary pair.
type PeriodInput struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ComparisonData is the collected material for both periods, plus
// optional rendered report bodies.
type ComparisonData struct {
	Period1Stats map[string]float64 `json:"period1_stats"`
	Period2Stats map[string]float64 `json:"period2_stats"`
	HTML         string             `json:"html"`
	Markdown     string             `json:"markdown"`
}

// Change is one per-metric delta record.
type Change struct {
	Value      string `json:"value"`
	Percentage string `json:"percentage"`
	Direction  string `json:"direction"`
}

// PeriodStats is a resolved period with its collected stats attached.
type PeriodStats struct {
	Start string             `json:"start"`
	End   string             `json:"end"`
	Days  int                `json:"days"`
	Stats map[string]float64 `json:"stats"`
}

// Comparison is the computed comparison block.
type Comparison struct {
	Period1 PeriodStats       `json:"period1"`
	Period2 PeriodStats       `json:"period2"`
	Changes map[string]Change `json:"changes"`
}

// CompareResult is the compare_periods payload.
type CompareResult struct {
	Success          bool        `json:"success"`
	Message          string      `json:"message"`
	Period1          Period      `json:"period1"`
	Period2          Period      `json:"period2"`
	MetricsToCompare []string    `json:"metrics_to_compare"`
	OutputFormat     string      `json:"output_format"`
	SaveToFile       bool        `json:"save_to_file"`
	Instructions     string      `json:"instructions"`
	Note             string      `json:"note"`
	Comparison       *Comparison `json:"comparison,omitempty"`
	FilesSaved       []string    `json:"files_saved,omitempty"`
}

func (h *Handler) comparePeriods(in CompareInput) (any, error) {
	// Required before any date resolution.
	if in.Period1 == nil || in.Period2 == nil {
		return nil, toolerr.New(toolerr.CodeMissingParameter,
			"Both period1 and period2 must be provided",
			"Each period should have start_date and end_date")
	}

	p1, err := daterange.Resolve(daterange.Params{
		StartDate: in.Period1.StartDate,
		EndDate:   in.Period1.EndDate,
	}, h.today())
	if err != nil {
		return nil, err
	}
	p2, err := daterange.Resolve(daterange.Params{
		StartDate: in.Period2.StartDate,
		EndDate:   in.Period2.EndDate,
	}, h.today())
	if err != nil {
		return nil, err
	}

	metrics := in.Metrics
	if len(metrics) == 0 {
		metrics = []string{"all"}
	}
	outputFormat := in.OutputFormat
	if outputFormat == "" {
		outputFormat = h.cfg.Defaults.OutputFormat
	}
	saveToFile := h.cfg.Output.AutoSave
	if in.SaveToFile != nil {
		saveToFile = *in.SaveToFile
	}

	result := &CompareResult{
		Success:          true,
		Message:          "Period comparison initiated. Follow instructions to collect data for both periods.",
		Period1:          Period{Start: p1.Start, End: p1.End, Days: p1.Days},
		Period2:          Period{Start: p2.Start, End: p2.End, Days: p2.Days},
		MetricsToCompare: metrics,
		OutputFormat:     outputFormat,
		SaveToFile:       saveToFile,
		Instructions:     h.inst.Comparison(p1, p2, metrics),
		Note: "This tool helps identify trends by comparing two time periods. " +
			"Collect the same metrics for both periods, then calculate differences.",
	}

	if d := in.ComparisonData; d != nil {
		result.Comparison = buildComparison(d, p1, p2)

		// Artifacts are written only when both rendered bodies exist.
		if saveToFile && d.HTML != "" && d.Markdown != "" {
			var files []string
			if outputFormat == "both" || outputFormat == "html" {
				path, err := h.store.Save(artifact.ComparisonFilename(p1.Start, p2.Start, "html"), d.HTML)
				if err != nil {
					return nil, err
				}
				files = append(files, path)
			}
			if outputFormat == "both" || outputFormat == "markdown" {
				path, err := h.store.Save(artifact.ComparisonFilename(p1.Start, p2.Start, "markdown"), d.Markdown)
				if err != nil {
					return nil, err
				}
				files = append(files, path)
			}
			result.FilesSaved = files
			result.Message = fmt.Sprintf("Period comparison completed and saved to %d file(s).", len(files))
		}
	}

	return result, nil
}

func buildComparison(d *ComparisonData, p1, p2 daterange.Range) *Comparison {
	c := &Comparison{
		Period1: PeriodStats{Start: p1.Start, End: p1.End, Days: p1.Days, Stats: nonNilStats(d.Period1Stats)},
		Period2: PeriodStats{Start: p2.Start, End: p2.End, Days: p2.Days, Stats: nonNilStats(d.Period2Stats)},
		Changes: map[string]Change{},
	}
	if d.Period1Stats == nil || d.Period2Stats == nil {
		return c
	}
	for _, m := range comparedMetrics {
		v1, ok1 := d.Period1Stats[m.key]
		v2, ok2 := d.Period2Stats[m.key]
		if ok1 && ok2 {
			c.Changes[m.key] = calcChange(v1, v2, m.unit)
		}
	}
	return c
}

// calcChange produces the signed delta with unit suffix, the signed
// percentage to one decimal ("0%" when the baseline is zero), and the
// direction.
func calcChange(v1, v2 float64, unit string) Change {
	diff := v2 - v1

	value := strconv.FormatFloat(diff, 'f', -1, 64)
	if diff > 0 {
		value = "+" + value
	}

	percentage := "0%"
	if v1 != 0 {
		p := diff / v1 * 100
		percentage = fmt.Sprintf("%.1f%%", p)
		if p > 0 {
			percentage = "+" + percentage
		}
	}

	direction := "no change"
	switch {
	case diff > 0:
		direction = "increase"
	case diff < 0:
		direction = "decrease"
	}

	return Change{Value: value + unit, Percentage: percentage, Direction: direction}
}

func nonNilStats(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
