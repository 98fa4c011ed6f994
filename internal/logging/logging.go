// Package logging configures the process-wide slog default. Logs always
// default to stderr: stdout carries the MCP stdio transport and must
// stay clean.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init sets the global slog default. debug lowers the level to Debug.
// If w is nil, os.Stderr is used.
func Init(debug bool, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// New returns a logger scoped to one component.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
