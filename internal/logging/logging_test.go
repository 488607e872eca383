package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  log.Level
	}{
		{"debug", "debug", log.DebugLevel},
		{"info", "info", log.InfoLevel},
		{"warn", "warn", log.WarnLevel},
		{"warning", "warning", log.WarnLevel},
		{"error", "error", log.ErrorLevel},
		{"mixed case and spaces", "  DEBUG ", log.DebugLevel},
		{"unknown defaults to warn", "verbose", log.WarnLevel},
		{"empty defaults to warn", "", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warning", "path", "done.db")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible warning") {
		t.Errorf("expected warning in output, got %q", out)
	}
	if !strings.Contains(out, "path=done.db") {
		t.Errorf("expected structured field in output, got %q", out)
	}
	if !strings.Contains(out, Prefix) {
		t.Errorf("expected prefix %q in output, got %q", Prefix, out)
	}
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug")

	logger.Debug("store loaded", "keys", 3)

	if !strings.Contains(buf.String(), "store loaded") {
		t.Errorf("expected debug message, got %q", buf.String())
	}
}
