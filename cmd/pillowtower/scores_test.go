package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pillow-tower/internal/storage"
)

func TestPrintStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printStats(&empty, store); err != nil {
		t.Fatalf("printStats() failed: %v", err)
	}
	if !strings.Contains(empty.String(), "No runs recorded yet.") {
		t.Errorf("expected the empty message, got %q", empty.String())
	}

	runs := []storage.RunResult{
		{Mode: "pillow", Score: 8, Duration: time.Minute},
		{Mode: "pillow", Score: 4, Duration: time.Minute},
		{Mode: "pillow-hard", Score: 12, Duration: time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var out bytes.Buffer
	if err := printStats(&out, store); err != nil {
		t.Fatalf("printStats() failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// Title, blank line, header, rule, then one row per mode.
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out.String())
	}
	tests := []struct {
		line   string
		fields []string
	}{
		{lines[4], []string{"pillow-hard", "12", "1", "12.0", "12"}},
		{lines[5], []string{"pillow", "8", "2", "6.0", "12"}},
	}
	for _, tt := range tests {
		got := strings.Fields(tt.line)
		if len(got) < len(tt.fields) {
			t.Fatalf("short row %q", tt.line)
		}
		for i, want := range tt.fields {
			if got[i] != want {
				t.Errorf("row %q: field %d expected %q, got %q", tt.line, i, want, got[i])
			}
		}
	}
}
