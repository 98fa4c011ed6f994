package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.DaysBack != 7 {
		t.Errorf("DaysBack = %d, want 7", cfg.Defaults.DaysBack)
	}
	if cfg.Defaults.OutputFormat != "both" {
		t.Errorf("OutputFormat = %q, want both", cfg.Defaults.OutputFormat)
	}
	if !cfg.Output.AutoSave {
		t.Error("AutoSave should default to true")
	}
	if cfg.Servers.Slack != "playground-slack-mcp" {
		t.Errorf("Servers.Slack = %q", cfg.Servers.Slack)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recap.yaml")
	data := `
user:
  name: Dana
defaults:
  days_back: 14
output:
  dir: /tmp/recaps
content_filter:
  enabled: true
  exclude_topics: [social, random]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.User.Name != "Dana" {
		t.Errorf("User.Name = %q", cfg.User.Name)
	}
	if cfg.Defaults.DaysBack != 14 {
		t.Errorf("DaysBack = %d, want 14", cfg.Defaults.DaysBack)
	}
	if cfg.Output.Dir != "/tmp/recaps" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if diff := cmp.Diff([]string{"social", "random"}, cfg.Filter.ExcludeTopics); diff != "" {
		t.Errorf("ExcludeTopics mismatch (-want +got):\n%s", diff)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Defaults.Timezone != "America/Toronto" {
		t.Errorf("Timezone = %q", cfg.Defaults.Timezone)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/var/recap")
	t.Setenv("DEFAULT_DAYS_BACK", "30")
	t.Setenv("AUTO_SAVE", "false")
	t.Setenv("DEBUG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir != "/var/recap" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Defaults.DaysBack != 30 {
		t.Errorf("DaysBack = %d", cfg.Defaults.DaysBack)
	}
	if cfg.Output.AutoSave {
		t.Error("AutoSave should be false")
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoad_BadTimezoneFallsBackToUTC(t *testing.T) {
	t.Setenv("TIMEZONE", "Not/AZone")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Location().String() != "UTC" {
		t.Errorf("Location = %v, want UTC", cfg.Location())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
