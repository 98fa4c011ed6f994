// Package daterange resolves partial date inputs into a canonical
// start/end/days triple. Dates are civil dates in YYYY-MM-DD form with
// no time-of-day component.
//
// There are two entry points with different invariants: Resolve enforces
// strict start < end ordering for multi-day ranges, while SingleDay
// produces an equal-bounds one-day range for daily summaries and never
// runs the ordering check. They are deliberately not unified.
package daterange

import (
	"fmt"
	"time"

	"recap/internal/toolerr"
)

// ISOFormat is the wire format for all dates.
const ISOFormat = "2006-01-02"

// Params are the optional inputs a tool call may carry.
type Params struct {
	DaysBack  int
	StartDate string
	EndDate   string
}

// Range is a resolved period. Start and End are ISO dates, Days the
// whole-day difference. Immutable once constructed.
type Range struct {
	Start string
	End   string
	Days  int
}

// Resolve computes a Range from partial inputs. Resolution order:
// both dates as given; start only with end = today; end only with
// start = end - days_back; neither with end = today and
// start = today - days_back. days_back defaults to 7.
func Resolve(p Params, now time.Time) (Range, error) {
	daysBack := p.DaysBack
	if daysBack <= 0 {
		daysBack = 7
	}
	today := now.Format(ISOFormat)

	var startStr, endStr string
	switch {
	case p.StartDate != "" && p.EndDate != "":
		startStr, endStr = p.StartDate, p.EndDate
	case p.StartDate != "":
		startStr, endStr = p.StartDate, today
	case p.EndDate != "":
		end, err := ParseISO(p.EndDate)
		if err != nil {
			return Range{}, invalidFormat()
		}
		startStr, endStr = ISO(end.AddDate(0, 0, -daysBack)), p.EndDate
	default:
		startStr = ISO(truncate(now).AddDate(0, 0, -daysBack))
		endStr = today
	}

	start, err := ParseISO(startStr)
	if err != nil {
		return Range{}, invalidFormat()
	}
	end, err := ParseISO(endStr)
	if err != nil {
		return Range{}, invalidFormat()
	}
	if !start.Before(end) {
		return Range{}, toolerr.New(toolerr.CodeInvalidDateRange,
			"Start date must be before end date",
			fmt.Sprintf("start: %s, end: %s", startStr, endStr))
	}

	days := int(end.Sub(start) / (24 * time.Hour))
	return Range{Start: startStr, End: endStr, Days: days}, nil
}

// SingleDay returns a one-day range for the given date, defaulting to
// today. Start and End are equal and Days is 1; the strict ordering
// check does not apply.
func SingleDay(date string, now time.Time) (Range, error) {
	if date == "" {
		date = now.Format(ISOFormat)
	}
	if _, err := ParseISO(date); err != nil {
		return Range{}, invalidFormat()
	}
	return Range{Start: date, End: date, Days: 1}, nil
}

// ParseISO parses a YYYY-MM-DD date.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOFormat, s)
}

// ISO formats t as YYYY-MM-DD.
func ISO(t time.Time) string {
	return t.Format(ISOFormat)
}

// Display renders an ISO date for humans, e.g. "Nov 5, 2025".
// Unparseable input is returned as-is.
func Display(s string) string {
	t, err := ParseISO(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func invalidFormat() *toolerr.Error {
	return toolerr.New(toolerr.CodeInvalidDateRange,
		"Invalid date format", "Dates must be in YYYY-MM-DD format")
}
