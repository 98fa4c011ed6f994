package instructions

import (
	"strings"
	"testing"

	"recap/internal/config"
	"recap/internal/daterange"
)

func newBuilder() *Builder {
	return NewBuilder(config.Default())
}

func TestSlack_NamesConfiguredServer(t *testing.T) {
	got := newBuilder().Slack("2025-10-29", "2025-11-05")
	for _, want := range []string{
		"mcp_playground-slack-mcp_slack_my_messages",
		`Set after: "2025-10-29"`,
		`Set before: "2025-11-05"`,
		"from:@me after:2025-10-29 before:2025-11-05",
		"Total messages sent",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Slack block missing %q", want)
		}
	}
	if strings.Contains(got, "Content Filter") {
		t.Error("filter block present with filter disabled")
	}
}

func TestSlack_ContentFilter(t *testing.T) {
	cfg := config.Default()
	cfg.Filter = config.ContentFilter{
		Enabled:         true,
		ExcludeTopics:   []string{"social", "memes"},
		ExcludeKeywords: []string{"lunch"},
	}
	got := NewBuilder(cfg).Slack("2025-10-29", "2025-11-05")
	for _, want := range []string{
		"## Content Filter",
		"work-related content only",
		"Excluded topics: social, memes",
		"Excluded keywords: lunch",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("filtered Slack block missing %q", want)
		}
	}
}

func TestCalendar_TimeBounds(t *testing.T) {
	got := newBuilder().Calendar("2025-10-29", "2025-11-05")
	for _, want := range []string{
		"mcp_gworkspace-mcp_calendar_events",
		`Set time_min: "2025-10-29T00:00:00Z"`,
		`Set time_max: "2025-11-05T23:59:59Z"`,
		"Focus time blocks",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Calendar block missing %q", want)
		}
	}
}

func TestGmail_SlashDates(t *testing.T) {
	got := newBuilder().Gmail("2025-10-29", "2025-11-05")
	for _, want := range []string{
		"mcp_gworkspace-mcp_read_mail",
		"after:2025/10/29 before:2025/11/05",
		"from:me after:2025/10/29",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Gmail block missing %q", want)
		}
	}
}

func TestWeeklyCollection_CombinesSourcesAndDisplayDates(t *testing.T) {
	got := newBuilder().WeeklyCollection("2025-10-29", "2025-11-05")
	for _, want := range []string{
		"**Oct 29, 2025 to Nov 5, 2025**",
		"# Slack Data Collection Instructions",
		"# Calendar Data Collection Instructions",
		"# Gmail Data Collection Instructions",
		"## Next Steps",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("weekly block missing %q", want)
		}
	}
}

func TestDailyCollection(t *testing.T) {
	got := newBuilder().DailyCollection("2025-11-05")
	for _, want := range []string{
		"**Nov 5, 2025**",
		"## Daily Summary Focus",
		`Set after: "2025-11-05"`,
		`Set before: "2025-11-05"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("daily block missing %q", want)
		}
	}
}

func TestQuickStats(t *testing.T) {
	got := newBuilder().QuickStats("2025-10-29", "2025-11-05", 7)
	for _, want := range []string{
		"**2025-10-29 to 2025-11-05** (7 days)",
		"no deep analysis needed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("quick stats block missing %q", want)
		}
	}
}

func TestComparison_MetricSubset(t *testing.T) {
	p1 := daterange.Range{Start: "2025-10-01", End: "2025-10-08", Days: 7}
	p2 := daterange.Range{Start: "2025-10-08", End: "2025-10-15", Days: 7}

	all := newBuilder().Comparison(p1, p2, []string{"all"})
	for _, want := range []string{"Meeting Metrics", "Slack Metrics", "Email Metrics", "Focus Time Metrics"} {
		if !strings.Contains(all, want) {
			t.Errorf("all-metrics block missing %q", want)
		}
	}

	subset := newBuilder().Comparison(p1, p2, []string{"meetings", "email"})
	if !strings.Contains(subset, "Meeting Metrics") || !strings.Contains(subset, "Email Metrics") {
		t.Error("subset block missing requested categories")
	}
	if strings.Contains(subset, "Slack Metrics") || strings.Contains(subset, "Focus Time Metrics") {
		t.Error("subset block contains unrequested categories")
	}
}

func TestDeterminism(t *testing.T) {
	b := newBuilder()
	first := b.WeeklyCollection("2025-10-29", "2025-11-05")
	second := b.WeeklyCollection("2025-10-29", "2025-11-05")
	if first != second {
		t.Error("weekly block not byte-identical across calls")
	}
}
