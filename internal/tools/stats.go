package tools

import (
	"recap/internal/daterange"
)

// StatsInput is the argument set for get_quick_stats.
type StatsInput struct {
	DaysBack  int        `json:"days_back"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	StatsData *StatsData `json:"stats_data"`
}

// StatsData is raw metric data collected by the agent. Missing sections
// and fields default to zero/empty when reshaped.
type StatsData struct {
	Slack    *SlackStats    `json:"slack"`
	Calendar *CalendarStats `json:"calendar"`
	Email    *EmailStats    `json:"email"`
}

// SlackStats are messaging counts.
type SlackStats struct {
	TotalMessages       int   `json:"total_messages"`
	TopChannels         []any `json:"top_channels"`
	ThreadsParticipated int   `json:"threads_participated"`
	ReactionsGiven      int   `json:"reactions_given"`
	ReactionsReceived   int   `json:"reactions_received"`
}

// CalendarStats are meeting aggregates.
type CalendarStats struct {
	TotalEvents          int     `json:"total_events"`
	TotalMeetingHours    float64 `json:"total_meeting_hours"`
	AverageDailyMeetings float64 `json:"average_daily_meetings"`
	LongestMeetingHours  float64 `json:"longest_meeting_hours"`
	FocusTimeHours       float64 `json:"focus_time_hours"`
}

// EmailStats are mail counts.
type EmailStats struct {
	TotalEmails    int   `json:"total_emails"`
	EmailsSent     int   `json:"emails_sent"`
	EmailsReceived int   `json:"emails_received"`
	TopContacts    []any `json:"top_contacts"`
}

// Stats is the fixed three-section structure returned to the caller.
type Stats struct {
	Slack    SlackStats    `json:"slack"`
	Calendar CalendarStats `json:"calendar"`
	Email    EmailStats    `json:"email"`
}

// StatsResult is the get_quick_stats payload.
type StatsResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	Period           Period `json:"period"`
	Instructions     string `json:"instructions"`
	Note             string `json:"note"`
	Stats            *Stats `json:"stats,omitempty"`
	GenerationTimeMS int64  `json:"generation_time_ms"`
}

func (h *Handler) getQuickStats(in StatsInput) (any, error) {
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

	result := &StatsResult{
		Success:      true,
		Message:      "Quick stats collection initiated. Follow instructions to gather lightweight metrics.",
		Period:       Period{Start: r.Start, End: r.End, Days: r.Days},
		Instructions: h.inst.QuickStats(r.Start, r.End, r.Days),
		Note: "This tool provides a faster alternative to full summary generation. " +
			"Collect basic metrics only without detailed analysis.",
	}

	if in.StatsData != nil {
		result.Stats = reshapeStats(in.StatsData)
	}

	result.GenerationTimeMS = elapsedMS(start)
	return result, nil
}

// reshapeStats fills the fixed structure, defaulting every missing
// section or field to zero/empty so the caller never sees nulls.
func reshapeStats(d *StatsData) *Stats {
	s := &Stats{}
	if d.Slack != nil {
		s.Slack = *d.Slack
	}
	if d.Calendar != nil {
		s.Calendar = *d.Calendar
	}
	if d.Email != nil {
		s.Email = *d.Email
	}
	if s.Slack.TopChannels == nil {
		s.Slack.TopChannels = []any{}
	}
	if s.Email.TopContacts == nil {
		s.Email.TopContacts = []any{}
	}
	return s
}
