package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"text", []string{"msg=dispatch", "job=P1"}},
		{"json", []string{`"msg":"dispatch"`, `"job":"P1"`}},
		{"JSON", []string{`"msg":"dispatch"`}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		NewLoggerWithWriter(slog.LevelInfo, tt.format, &buf).Info("dispatch", "job", "P1")
		for _, want := range tt.want {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("format %s: expected %s in output, got: %s", tt.format, want, buf.String())
			}
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelInfo, "text", &buf).With("component", "simulator")

	logger.Debug("dispatch")
	logger.Info("simulation finished")

	out := buf.String()
	if strings.Contains(out, "dispatch") {
		t.Errorf("debug record leaked at info level: %s", out)
	}
	if !strings.Contains(out, "component=simulator") {
		t.Errorf("expected component attribute, got: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
