package tools

import (
	"fmt"
	"strings"

	"recap/internal/artifact"
	"recap/internal/toolerr"
)

// GetInput is the argument set for get_summary. Either filename or the
// start_date/end_date pair must be supplied.
type GetInput struct {
	Filename       string `json:"filename"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Format         string `json:"format"`
	IncludeContent *bool  `json:"include_content"`
}

// GetPeriod is the period block with a display form.
type GetPeriod struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Display string `json:"display"`
}

// SummaryDetail is the retrieved artifact. Content fields are filled
// according to the requested format.
type SummaryDetail struct {
	Filename        string     `json:"filename"`
	Format          string     `json:"format"`
	Period          *GetPeriod `json:"period"`
	SizeBytes       int64      `json:"size_bytes"`
	Content         string     `json:"content,omitempty"`
	HTMLContent     string     `json:"html_content,omitempty"`
	MarkdownContent string     `json:"markdown_content,omitempty"`
}

// GetResult is the get_summary payload.
type GetResult struct {
	Success bool          `json:"success"`
	Summary SummaryDetail `json:"summary"`
}

func (h *Handler) getSummary(in GetInput) (any, error) {
	format := in.Format
	if format == "" {
		format = "both"
	}
	includeContent := in.IncludeContent == nil || *in.IncludeContent

	filename := in.Filename
	if filename == "" && in.StartDate != "" && in.EndDate != "" {
		// Derive candidates from the range; HTML preferred.
		htmlName := artifact.Filename(in.StartDate, in.EndDate, "html")
		mdName := artifact.Filename(in.StartDate, in.EndDate, "markdown")
		switch {
		case h.store.Exists(htmlName):
			filename = htmlName
		case h.store.Exists(mdName):
			filename = mdName
		default:
			return nil, toolerr.New(toolerr.CodeFileNotFound,
				"No summary found for the specified date range",
				fmt.Sprintf("Looked for: %s and %s", htmlName, mdName))
		}
	}
	if filename == "" {
		return nil, toolerr.New(toolerr.CodeMissingParameter,
			"Either filename or start_date/end_date must be provided", "")
	}
	if !h.store.Exists(filename) {
		return nil, toolerr.New(toolerr.CodeFileNotFound,
			fmt.Sprintf("Summary not found: %s", filename),
			"Use list_summaries to see available summaries")
	}

	fileFormat := formatOf(filename)
	size, err := h.store.Size(filename)
	if err != nil {
		return nil, err
	}

	detail := SummaryDetail{
		Filename:  filename,
		Format:    fileFormat,
		SizeBytes: size,
	}
	if start, end, ok := artifact.ParsePeriod(filename); ok {
		detail.Period = &GetPeriod{Start: start, End: end, Display: displayRange(start, end)}
	}

	if includeContent {
		content, err := h.store.Read(filename)
		if err != nil {
			return nil, err
		}
		switch {
		case format == "both":
			// Best effort: load the sibling format too when present.
			if fileFormat == "html" {
				detail.HTMLContent = content
				sibling := strings.TrimSuffix(filename, ".html") + ".md"
				if h.store.Exists(sibling) {
					if md, err := h.store.Read(sibling); err == nil {
						detail.MarkdownContent = md
					}
				}
			} else {
				detail.MarkdownContent = content
				sibling := strings.TrimSuffix(filename, ".md") + ".html"
				if h.store.Exists(sibling) {
					if html, err := h.store.Read(sibling); err == nil {
						detail.HTMLContent = html
					}
				}
			}
		case format == fileFormat:
			detail.Content = content
		default:
			return nil, toolerr.New(toolerr.CodeFormatMismatch,
				fmt.Sprintf("Requested format '%s' but file is '%s'", format, fileFormat),
				fmt.Sprintf("Try requesting format: '%s' or 'both'", fileFormat))
		}
	}

	return &GetResult{Success: true, Summary: detail}, nil
}
