// Package config assembles the process configuration once at startup:
// defaults, then an optional YAML file, then environment overrides.
// The resulting Config is treated as immutable and passed into each
// component constructor.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Config is the full configuration surface.
type Config struct {
	User     User          `yaml:"user"`
	Defaults Defaults      `yaml:"defaults"`
	Output   Output        `yaml:"output"`
	Servers  Servers       `yaml:"servers"`
	Filter   ContentFilter `yaml:"content_filter"`
	Debug    bool          `yaml:"debug"`

	loc *time.Location
}

// User identifies the person the summaries are about.
type User struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	SlackID string `yaml:"slack_id"`
}

// Defaults are applied when a tool call omits the corresponding argument.
type Defaults struct {
	DaysBack     int    `yaml:"days_back"`
	Timezone     string `yaml:"timezone"`
	OutputFormat string `yaml:"output_format"`
}

// Output controls where artifacts are written.
type Output struct {
	Dir      string `yaml:"dir"`
	AutoSave bool   `yaml:"auto_save"`
}

// Servers are the MCP server names the instruction blocks reference.
// They must match the caller's mcp.json configuration.
type Servers struct {
	Slack    string `yaml:"slack"`
	Calendar string `yaml:"calendar"`
	Gmail    string `yaml:"gmail"`
}

// ContentFilter restricts messaging instructions to work-related content
// when enabled. It is pure instruction text; nothing is filtered locally.
type ContentFilter struct {
	Enabled         bool     `yaml:"enabled"`
	ExcludeTopics   []string `yaml:"exclude_topics"`
	ExcludeKeywords []string `yaml:"exclude_keywords"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		User: User{Name: "User"},
		Defaults: Defaults{
			DaysBack:     7,
			Timezone:     "America/Toronto",
			OutputFormat: "both",
		},
		Output: Output{Dir: "summaries", AutoSave: true},
		Servers: Servers{
			Slack:    "playground-slack-mcp",
			Calendar: "gworkspace-mcp",
			Gmail:    "gworkspace-mcp",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path
// (skipped when path is empty), and environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	cfg.applyEnv()

	loc, err := time.LoadLocation(cfg.Defaults.Timezone)
	if err != nil {
		loc = time.UTC
	}
	cfg.loc = loc
	return cfg, nil
}

// Location returns the resolved timezone (UTC when the configured name
// did not resolve).
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c *Config) applyEnv() {
	setString(&c.User.Name, "USER_NAME")
	setString(&c.User.Email, "USER_EMAIL")
	setString(&c.User.SlackID, "USER_SLACK_ID")
	setString(&c.Defaults.Timezone, "TIMEZONE")
	setString(&c.Output.Dir, "OUTPUT_DIR")
	setString(&c.Servers.Slack, "SLACK_MCP_SERVER")
	setString(&c.Servers.Calendar, "CALENDAR_MCP_SERVER")
	setString(&c.Servers.Gmail, "GMAIL_MCP_SERVER")

	if v := os.Getenv("DEFAULT_DAYS_BACK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Defaults.DaysBack = n
		}
	}
	if v := os.Getenv("AUTO_SAVE"); v != "" {
		c.Output.AutoSave = v != "false"
	}
	if v := os.Getenv("DEBUG"); v != "" {
		c.Debug = v == "true"
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
