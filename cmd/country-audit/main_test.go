package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phone_input_backend/platform/logger"
)

func TestRunBuiltInTable(t *testing.T) {
	var out, logs bytes.Buffer
	code := run([]string{"-territories", "-sample", "+1 809"}, &out, logger.NewWithWriter("production", &logs))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, logs.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected one line per digit, got %q", out.String())
	}
	if !strings.HasSuffix(lines[3], "+1 809") || !strings.Contains(lines[3], " do ") {
		t.Fatalf("unexpected last line %q", lines[3])
	}
}

func TestRunReportsTableErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.yaml")
	table := `countries:
  - name: Britain
    regions: [europe]
    code: gb
    dialCode: "33"
`
	if err := os.WriteFile(path, []byte(table), 0o600); err != nil {
		t.Fatalf("write table: %v", err)
	}

	var out, logs bytes.Buffer
	if code := run([]string{"-file", path}, &out, logger.NewWithWriter("production", &logs)); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(logs.String(), "country_audit") {
		t.Fatalf("expected findings to be logged, got %q", logs.String())
	}
}

func TestRunLoadFailure(t *testing.T) {
	var out, logs bytes.Buffer
	if code := run([]string{"-file", filepath.Join(t.TempDir(), "missing.yaml")}, &out, logger.NewWithWriter("production", &logs)); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if code := run([]string{"-bogus"}, &out, logger.NewWithWriter("production", &logs)); code != 2 {
		t.Fatalf("expected exit 2 for unknown flag, got %d", code)
	}
}
