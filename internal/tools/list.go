package tools

import (
	"time"

	"recap/internal/artifact"
	"recap/internal/daterange"
)

// ListInput is the argument set for list_summaries.
type ListInput struct {
	Limit  int    `json:"limit"`
	Sort   string `json:"sort"`
	Format string `json:"format"`
}

// SummaryEntry is one listed artifact with metadata parsed back from
// its filename. Period is nil for names outside the weekly pattern.
type SummaryEntry struct {
	Filename  string  `json:"filename"`
	Path      string  `json:"path"`
	Format    string  `json:"format"`
	Period    *Period `json:"period"`
	Created   string  `json:"created"`
	SizeBytes int64   `json:"size_bytes"`
	Preview   string  `json:"preview"`
}

// ListFilters echoes the effective options back to the caller.
type ListFilters struct {
	Format string `json:"format"`
	Sort   string `json:"sort"`
	Limit  int    `json:"limit"`
}

// ListResult is the list_summaries payload.
type ListResult struct {
	Success    bool           `json:"success"`
	Summaries  []SummaryEntry `json:"summaries"`
	TotalCount int            `json:"total_count"`
	Filters    ListFilters    `json:"filters"`
}

func (h *Handler) listSummaries(in ListInput) (any, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 10
	}
	sortOrder := in.Sort
	if sortOrder == "" {
		sortOrder = "newest"
	}
	format := in.Format
	if format == "" {
		format = "all"
	}

	infos, err := h.store.List(artifact.ListOptions{Format: format, Sort: sortOrder, Limit: limit})
	if err != nil {
		return nil, err
	}

	summaries := make([]SummaryEntry, 0, len(infos))
	for _, fi := range infos {
		entry := SummaryEntry{
			Filename:  fi.Filename,
			Path:      fi.Path,
			Format:    formatOf(fi.Filename),
			Created:   fi.Created.UTC().Format(time.RFC3339),
			SizeBytes: fi.Size,
			Preview:   "Weekly summary",
		}
		if start, end, ok := artifact.ParsePeriod(fi.Filename); ok {
			entry.Period = &Period{Start: start, End: end, Days: daysBetween(start, end)}
			entry.Preview = "Summary for " + displayRange(start, end)
		}
		summaries = append(summaries, entry)
	}

	return &ListResult{
		Success:    true,
		Summaries:  summaries,
		TotalCount: len(summaries),
		Filters:    ListFilters{Format: format, Sort: sortOrder, Limit: limit},
	}, nil
}

func formatOf(filename string) string {
	if len(filename) > 5 && filename[len(filename)-5:] == ".html" {
		return "html"
	}
	return "markdown"
}

// daysBetween returns the whole-day span between two ISO dates already
// validated by the filename pattern.
func daysBetween(start, end string) int {
	s, err1 := daterange.ParseISO(start)
	e, err2 := daterange.ParseISO(end)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(e.Sub(s) / (24 * time.Hour))
}
