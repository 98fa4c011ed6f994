package artifact

import (
	"fmt"
	"regexp"
)

// Artifact filename prefixes. Only weekly filenames carry a parseable
// date range; daily and comparison files decode to no period.
const (
	WeeklyPrefix     = "weekly-summary-"
	DailyPrefix      = "daily-summary-"
	ComparisonPrefix = "period-comparison-"
)

var weeklyPattern = regexp.MustCompile(`weekly-summary-(\d{4}-\d{2}-\d{2})-to-(\d{4}-\d{2}-\d{2})`)

// Filename derives the weekly artifact name for a range and format:
// weekly-summary-{start}-to-{end}.{html|md}.
func Filename(start, end, format string) string {
	return fmt.Sprintf("%s%s-to-%s.%s", WeeklyPrefix, start, end, Ext(format))
}

// DailyFilename derives the daily artifact name for one date.
func DailyFilename(date, format string) string {
	return fmt.Sprintf("%s%s.%s", DailyPrefix, date, Ext(format))
}

// ComparisonFilename derives the comparison artifact name from the two
// period start dates.
func ComparisonFilename(p1Start, p2Start, format string) string {
	return fmt.Sprintf("%s%s-vs-%s.%s", ComparisonPrefix, p1Start, p2Start, Ext(format))
}

// Ext maps a format to its file extension: html stays html, everything
// else is markdown.
func Ext(format string) string {
	if format == "html" {
		return "html"
	}
	return "md"
}

// ParsePeriod extracts the date range encoded in a weekly artifact
// filename. Names that do not match the weekly pattern return ok=false;
// that is a valid, displayable state, not an error.
func ParsePeriod(filename string) (start, end string, ok bool) {
	m := weeklyPattern.FindStringSubmatch(filename)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
