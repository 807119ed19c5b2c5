package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestWithContextAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, SessionIDKey, "sess-1")
	log.WithContext(ctx).SessionEvent("created", "sess-1", "us")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-1" || entry["session_id"] != "sess-1" || entry["country"] != "us" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestAuditFindingLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.AuditFinding("gb", "error", "bad dial code")
	log.AuditFinding("zz", "warning", "unknown region")

	dec := json.NewDecoder(&buf)
	var levels []string
	for dec.More() {
		var entry map[string]any
		if err := dec.Decode(&entry); err != nil {
			t.Fatalf("decode: %v", err)
		}
		levels = append(levels, entry["level"].(string))
	}
	if len(levels) != 2 || levels[0] != "ERROR" || levels[1] != "WARN" {
		t.Fatalf("unexpected levels %v", levels)
	}
}

func TestDevelopmentUsesTextAndDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("development", &buf)

	log.Debug("debug line")
	log.StoreError("get", errors.New("boom"))

	if !bytes.Contains(buf.Bytes(), []byte("msg=\"debug line\"")) {
		t.Fatalf("expected text debug output, got %q", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("operation=get")) {
		t.Fatalf("expected store error fields, got %q", buf.String())
	}
	if log.WithContext(context.Background()) != log {
		t.Fatal("empty context should return the same logger")
	}
}
