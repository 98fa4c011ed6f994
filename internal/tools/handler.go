// Package tools implements the six callable operations: their input
// schemas, argument handling, payload construction, and the dispatch
// contract. Every call resolves to either a full success payload or a
// coded toolerr.Error; there is no partial-success shape.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"recap/internal/artifact"
	"recap/internal/config"
	"recap/internal/daterange"
	"recap/internal/instructions"
	"recap/internal/logging"
	"recap/internal/toolerr"
)

// Handler executes tool calls against one config and one artifact store.
// Now is swappable so tests can pin "today".
type Handler struct {
	cfg   *config.Config
	store *artifact.Store
	inst  *instructions.Builder
	log   *slog.Logger

	Now func() time.Time
}

// NewHandler wires a Handler from the process configuration.
func NewHandler(cfg *config.Config, store *artifact.Store) *Handler {
	return &Handler{
		cfg:   cfg,
		store: store,
		inst:  instructions.NewBuilder(cfg),
		log:   logging.New("tools"),
		Now:   time.Now,
	}
}

// today returns the current time in the configured timezone.
func (h *Handler) today() time.Time {
	return h.Now().In(h.cfg.Location())
}

// Period is the resolved date range as it appears in payloads.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// fallback is the per-tool generic failure applied to unstructured
// errors; structured errors pass through Wrap unchanged.
type fallback struct {
	code    string
	message string
}

var fallbacks = map[string]fallback{
	"generate_daily_summary":  {toolerr.CodeGenerationFailed, "Failed to generate daily summary"},
	"generate_weekly_summary": {toolerr.CodeGenerationFailed, "Failed to generate summary"},
	"list_summaries":          {toolerr.CodeListFailed, "Failed to list summaries"},
	"get_summary":             {toolerr.CodeGetFailed, "Failed to retrieve summary"},
	"get_quick_stats":         {toolerr.CodeStatsFailed, "Failed to get quick stats"},
	"compare_periods":         {toolerr.CodeComparisonFailed, "Failed to compare periods"},
}

// Dispatch routes one tool call. Unknown names fail with UNKNOWN_TOOL
// listing the valid names; any unstructured error from a tool is wrapped
// with that tool's fallback code, preserving the original message as
// details.
func (h *Handler) Dispatch(ctx context.Context, name string, args json.RawMessage) (any, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	fb, ok := fallbacks[name]
	if !ok {
		return nil, toolerr.New(toolerr.CodeUnknownTool,
			fmt.Sprintf("Unknown tool: %s", name),
			"Available tools: "+strings.Join(Names(), ", "))
	}

	h.log.Debug("tool call", "tool", name)

	var (
		result any
		err    error
	)
	switch name {
	case "generate_daily_summary":
		result, err = decode(args, h.generateDailySummary)
	case "generate_weekly_summary":
		result, err = decode(args, h.generateWeeklySummary)
	case "list_summaries":
		result, err = decode(args, h.listSummaries)
	case "get_summary":
		result, err = decode(args, h.getSummary)
	case "get_quick_stats":
		result, err = decode(args, h.getQuickStats)
	case "compare_periods":
		result, err = decode(args, h.comparePeriods)
	}
	if err != nil {
		return nil, toolerr.Wrap(err, fb.code, fb.message)
	}
	return result, nil
}

// decode unmarshals args into the tool's input type and runs it.
func decode[T any](args json.RawMessage, fn func(T) (any, error)) (any, error) {
	var in T
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	return fn(in)
}

// elapsedMS returns whole milliseconds since start.
func elapsedMS(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

// displayRange renders "Oct 29, 2025 to Nov 5, 2025".
func displayRange(start, end string) string {
	return daterange.Display(start) + " to " + daterange.Display(end)
}
