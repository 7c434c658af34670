package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ironsheep/rankboard-ocr/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("frame processed", slog.Int(FieldFrame, 3))
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if record["level"] != "info" {
		t.Errorf("level: got %v, want info", record["level"])
	}
	if record["msg"] != "frame processed" {
		t.Errorf("msg: got %v", record["msg"])
	}
	if record[FieldFrame] != float64(3) {
		t.Errorf("frame: got %v, want 3", record[FieldFrame])
	}
	ts, ok := record["ts"].(string)
	if !ok || !strings.HasSuffix(ts, "Z") {
		t.Errorf("ts should be an RFC3339 UTC string, got %v", record["ts"])
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("incomplete row", slog.String(FieldRanking, "7"))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, "ranking=7") {
		t.Errorf("unexpected console output: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfig(t *testing.T) {
	if _, err := NewFromConfig(nil, nil); err != nil {
		t.Fatalf("nil config: %v", err)
	}
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger, err := NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("json config: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	runID := NewRunID()
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run ID is not a UUID: %v", err)
	}

	WithRun(logger, runID, "match.mp4").Info("start")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if record[FieldRunID] != runID || record[FieldSource] != "match.mp4" {
		t.Errorf("run attributes missing: %v", record)
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Error("nothing happens")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should not be enabled at error level")
	}
}
