// Package instructions builds the natural-language data-collection
// blocks returned to the calling agent. Nothing here queries anything:
// the text names which external MCP tools to run and what to extract,
// and the agent does the rest. Output is byte-deterministic for a given
// input so blocks can be golden-tested.
package instructions

import (
	"fmt"
	"strings"

	"recap/internal/config"
	"recap/internal/daterange"
)

// Builder renders instruction blocks parameterized by the configured
// MCP server names and the optional messaging content filter.
type Builder struct {
	servers config.Servers
	filter  config.ContentFilter
}

// NewBuilder creates a Builder from the process configuration.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{servers: cfg.Servers, filter: cfg.Filter}
}

// Slack returns the messaging data-collection block. When the content
// filter is enabled the block also enumerates excluded topics and
// keywords and restricts extraction to work-related content.
func (b *Builder) Slack(start, end string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `
# Slack Data Collection Instructions

Please collect the following Slack data for period %s to %s:

1. **Your Messages**: Use mcp_%s_slack_my_messages
   - Set after: "%s"
   - Set before: "%s"
   - Set count: 200

2. **Search for your activity**: Use mcp_%s_slack_search
   - Query: "from:@me after:%s before:%s"
   - Count: 100

Analyze and extract:
- Total messages sent
- Channels participated in (with message counts)
- Threads participated in
- Reactions given/received
- Top collaborators (people you messaged most)
- Key topics discussed
- Important decisions or action items
`, start, end, b.servers.Slack, start, end, b.servers.Slack, start, end)

	if b.filter.Enabled {
		sb.WriteString("\n## Content Filter\n\nRestrict extraction to work-related content only.\n")
		if len(b.filter.ExcludeTopics) > 0 {
			fmt.Fprintf(&sb, "- Excluded topics: %s\n", strings.Join(b.filter.ExcludeTopics, ", "))
		}
		if len(b.filter.ExcludeKeywords) > 0 {
			fmt.Fprintf(&sb, "- Excluded keywords: %s\n", strings.Join(b.filter.ExcludeKeywords, ", "))
		}
		sb.WriteString("Skip any message matching an excluded topic or keyword when extracting metrics and highlights.\n")
	}
	return sb.String()
}

// Calendar returns the calendar data-collection block.
func (b *Builder) Calendar(start, end string) string {
	return fmt.Sprintf(`
# Calendar Data Collection Instructions

Please collect calendar data for period %s to %s:

1. **Calendar Events**: Use mcp_%s_calendar_events
   - Set calendar_id: "primary"
   - Set time_min: "%sT00:00:00Z"
   - Set time_max: "%sT23:59:59Z"
   - Set max_results: 100
   - Set include_attendees: true

Analyze and extract:
- Total number of meetings/events
- Total meeting hours
- Average meeting duration
- Longest meeting
- Meeting distribution by day
- Top meeting attendees/collaborators
- Types of meetings (1:1s, team meetings, client calls, etc.)
- Focus time blocks (gaps between meetings)
`, start, end, b.servers.Calendar, start, end)
}

// Gmail returns the mail data-collection block. Gmail search syntax
// wants slash-separated dates.
func (b *Builder) Gmail(start, end string) string {
	after := strings.ReplaceAll(start, "-", "/")
	before := strings.ReplaceAll(end, "-", "/")
	return fmt.Sprintf(`
# Gmail Data Collection Instructions

Please collect Gmail data for period %s to %s:

1. **Recent Emails**: Use mcp_%s_read_mail
   - Set query: "after:%s before:%s"
   - Set max_results: 50
   - Set include_body: false (for performance)

2. **Sent Emails**: Use mcp_%s_read_mail
   - Set query: "from:me after:%s before:%s"
   - Set max_results: 50

Analyze and extract:
- Total emails received
- Total emails sent
- Top senders/recipients
- Important threads (based on labels, stars, importance)
- Action items from emails
- Key topics or subjects
`, start, end, b.servers.Gmail, after, before, b.servers.Gmail, after, before)
}

// WeeklyCollection combines all three source blocks with synthesis
// guidance for a full weekly summary.
func (b *Builder) WeeklyCollection(start, end string) string {
	return fmt.Sprintf(`
# Weekly Summary Data Collection

To generate a comprehensive weekly summary for **%s to %s**, please collect data from the following sources:

%s

%s

%s

## Next Steps

1. Make the necessary MCP tool calls to collect data from each source
2. Analyze the data to identify:
   - Key achievements and wins
   - Time allocation patterns
   - Communication trends
   - Outstanding action items
   - Insights and learnings
3. Synthesize the findings into the summary template provided
4. Generate both HTML and Markdown output formats

## Important Notes

- Focus on **actionable insights** and **meaningful patterns**
- Highlight **achievements** and **accomplishments**
- Identify **blockers** and **challenges** that need attention
- Extract **concrete action items** from messages and emails
- Provide **context** for metrics and statistics
`,
		daterange.Display(start), daterange.Display(end),
		b.Slack(start, end), b.Calendar(start, end), b.Gmail(start, end))
}

// DailyCollection combines the source blocks for a single day with the
// narrower daily focus guidance.
func (b *Builder) DailyCollection(date string) string {
	return fmt.Sprintf(`
# Daily Summary Data Collection

To generate a daily productivity summary for **%s**, please collect data from the following sources:

%s

%s

%s

## Daily Summary Focus

For daily summaries, focus on:
- **Today's key meetings** and outcomes
- **Important Slack conversations** and decisions
- **Email highlights** - critical communications
- **Accomplishments** - what got done today
- **Tomorrow's prep** - what's coming up

## Analysis Guidelines

- Keep it concise (1-2 minutes to read)
- Focus on actionable items and decisions
- Highlight what needs follow-up
- Note any blockers or concerns
- Preview tomorrow's calendar
`,
		daterange.Display(date),
		b.Slack(date, date), b.Calendar(date, date), b.Gmail(date, date))
}

// QuickStats returns the lightweight counts-only collection block.
func (b *Builder) QuickStats(start, end string, days int) string {
	return fmt.Sprintf(`
# Quick Stats Data Collection

Collect basic metrics for **%s to %s** (%d days):

## Slack Metrics
Use mcp_%s_slack_my_messages:
- Count total messages
- List top 5 channels by activity
- Count threads participated in

## Calendar Metrics
Use mcp_%s_calendar_events:
- Count total events
- Calculate total meeting hours
- Identify longest meeting

## Gmail Metrics
Use mcp_%s_read_mail (lightweight - no body):
- Count emails sent (from:me)
- Count emails received
- List top 3 email contacts

Return raw counts and lists only - no deep analysis needed.
`, start, end, days, b.servers.Slack, b.servers.Calendar, b.servers.Gmail)
}

// Comparison returns the two-period comparison block scoped to the
// requested metric categories ("all" selects every category).
func (b *Builder) Comparison(p1, p2 daterange.Range, metrics []string) string {
	include := func(name string) bool {
		for _, m := range metrics {
			if m == "all" || m == name {
				return true
			}
		}
		return false
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `
# Period Comparison Instructions

Compare these two periods:
- **Period 1**: %s to %s (%d days)
- **Period 2**: %s to %s (%d days)

## Data to Collect

For each period, gather:
`, p1.Start, p1.End, p1.Days, p2.Start, p2.End, p2.Days)

	if include("meetings") {
		sb.WriteString(`
### Meeting Metrics
- Total meeting hours
- Number of meetings
- Average meeting duration
- Meeting hours per day
`)
	}
	if include("slack") {
		sb.WriteString(`
### Slack Metrics
- Total messages sent
- Threads participated in
- Channels active in
- Reactions given/received
`)
	}
	if include("email") {
		sb.WriteString(`
### Email Metrics
- Emails sent
- Emails received
- Response rate
- Top contacts
`)
	}
	if include("focus_time") {
		sb.WriteString(`
### Focus Time Metrics
- Hours of uninterrupted focus time
- Longest focus block
- Focus time percentage
`)
	}

	sb.WriteString(`
## Analysis

For each metric, calculate:
1. **Absolute change**: Period2 - Period1
2. **Percentage change**: ((Period2 - Period1) / Period1) x 100%
3. **Direction**: increase, decrease, or no change
4. **Normalized values**: Adjust for different period lengths if needed

Identify:
- Significant improvements (>20% positive change)
- Concerning trends (>20% negative change)
- Patterns and insights from the comparison
`)
	return sb.String()
}
