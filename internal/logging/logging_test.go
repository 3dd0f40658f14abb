package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var out []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid json line %q: %v", scanner.Text(), err)
		}
		out = append(out, entry)
	}
	return out
}

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceOnlyWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is off, got %v", err)
	}
	SetTraceEnabled(true)
	Trace("selection.toggle", map[string]interface{}{"value": "a"})
	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0]["event"] != "selection.toggle" {
		t.Fatalf("unexpected event %v", entries[0]["event"])
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok || payload["value"] != "a" {
		t.Fatalf("unexpected payload %#v", entries[0]["payload"])
	}
	if _, ok := entries[0]["time"]; !ok {
		t.Fatalf("expected timestamp in %#v", entries[0])
	}
}

func TestErrorAlwaysLogged(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	entries := readEntries(t, path)
	if len(entries) != 1 || entries[0]["error"] != "boom" || entries[0]["level"] != "error" {
		t.Fatalf("unexpected entries %#v", entries)
	}
}

func TestConfigureBlankRestoresDefault(t *testing.T) {
	Configure("")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
