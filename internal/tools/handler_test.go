package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"recap/internal/artifact"
	"recap/internal/config"
	"recap/internal/toolerr"
)

var testNow = time.Date(2025, 11, 5, 14, 30, 0, 0, time.UTC)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Dir = t.TempDir()
	h := NewHandler(cfg, artifact.NewStore(cfg.Output.Dir))
	h.Now = func() time.Time { return testNow }
	return h
}

func dispatch(t *testing.T, h *Handler, name string, args any) (any, error) {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatal(err)
	}
	return h.Dispatch(context.Background(), name, raw)
}

func assertCode(t *testing.T, err error, code string) *toolerr.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var te *toolerr.Error
	if !errors.As(err, &te) {
		t.Fatalf("error %v is not a *toolerr.Error", err)
	}
	if te.Code != code {
		t.Errorf("code = %s, want %s", te.Code, code)
	}
	return te
}

func TestDispatch_UnknownTool(t *testing.T) {
	h := newTestHandler(t)
	_, err := h.Dispatch(context.Background(), "make_coffee", json.RawMessage("{}"))
	te := assertCode(t, err, toolerr.CodeUnknownTool)
	for _, name := range Names() {
		if !strings.Contains(te.Details, name) {
			t.Errorf("details missing tool %s: %q", name, te.Details)
		}
	}
}

func TestDispatch_NilArguments(t *testing.T) {
	h := newTestHandler(t)
	result, err := h.Dispatch(context.Background(), "list_summaries", nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.(*ListResult).TotalCount != 0 {
		t.Errorf("unexpected entries: %+v", result)
	}
}

func TestDispatch_StructuredErrorPassesThrough(t *testing.T) {
	h := newTestHandler(t)
	// INVALID_DATE_RANGE from the resolver must not be remapped to the
	// tool's GENERATION_FAILED fallback.
	_, err := dispatch(t, h, "generate_weekly_summary", map[string]any{
		"start_date": "2025-02-01",
		"end_date":   "2025-01-01",
	})
	assertCode(t, err, toolerr.CodeInvalidDateRange)
}

func TestDispatch_MalformedArgsWrappedWithFallback(t *testing.T) {
	h := newTestHandler(t)
	_, err := h.Dispatch(context.Background(), "generate_weekly_summary", json.RawMessage(`{"days_back": "seven"}`))
	te := assertCode(t, err, toolerr.CodeGenerationFailed)
	if te.Details == "" {
		t.Error("original message not preserved as details")
	}
}

func TestDefinitions_SixToolsWithSchemas(t *testing.T) {
	defs := Definitions()
	if len(defs) != 6 {
		t.Fatalf("got %d definitions, want 6", len(defs))
	}
	for _, d := range defs {
		if d.Name == "" || d.Description == "" {
			t.Errorf("definition missing name or description: %+v", d)
		}
		if d.InputSchema == nil || d.InputSchema.Type != "object" {
			t.Errorf("%s: schema missing or not object", d.Name)
		}
	}
}

func TestDefinitions_CompareRequiresPeriods(t *testing.T) {
	for _, d := range Definitions() {
		if d.Name != "compare_periods" {
			continue
		}
		want := map[string]bool{"period1": true, "period2": true}
		for _, r := range d.InputSchema.Required {
			delete(want, r)
		}
		if len(want) != 0 {
			t.Errorf("compare_periods schema missing required: %v", want)
		}
	}
}
