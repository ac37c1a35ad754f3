package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("debug", &buf).WithComponent("generation")
	l.Infow("generation.completed", map[string]any{"fingerprint": "f1", "rows": 2})

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log output")
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if rec["level"] != "info" {
		t.Fatalf("unexpected level: %#v", rec["level"])
	}
	if rec["msg"] != "generation.completed" {
		t.Fatalf("unexpected msg: %#v", rec["msg"])
	}
	if rec["component"] != "generation" {
		t.Fatalf("unexpected component: %#v", rec["component"])
	}
	if rec["fingerprint"] != "f1" {
		t.Fatalf("unexpected field fingerprint: %#v", rec["fingerprint"])
	}
	if rec["rows"] != float64(2) {
		t.Fatalf("unexpected field rows: %#v", rec["rows"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("error", &buf)
	l.Info("should_not_log")
	l.Error("should_log")
	out := strings.TrimSpace(buf.String())
	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if rec["level"] != "error" {
		t.Fatalf("unexpected level: %#v", rec["level"])
	}
}

func TestLoggerErrorFieldsAndFormatting(t *testing.T) {
	var buf bytes.Buffer
	root := NewLoggerWithWriter("info", &buf)
	child := root.WithComponent("export")

	child.Warnw("export.failed", map[string]any{"error": errors.New("connection refused")})
	root.Info("wrote %d rows to %s", 10, "vendas.csv")
	root.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d: %q", len(lines), buf.String())
	}

	var first, second map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if first["error"] != "connection refused" || first["component"] != "export" || first["level"] != "warn" {
		t.Fatalf("unexpected first record %#v", first)
	}
	if second["msg"] != "wrote 10 rows to vendas.csv" {
		t.Fatalf("unexpected message %#v", second["msg"])
	}
	if _, ok := second["component"]; ok {
		t.Fatal("WithComponent must not change the parent logger")
	}
}
