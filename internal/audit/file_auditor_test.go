package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/vigil-sh/vigil/internal/core"
)

func TestFileAuditor_MirrorsToJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	auditor, err := NewFileAuditor(path)
	if err != nil {
		t.Fatalf("NewFileAuditor() error = %v", err)
	}
	defer auditor.Close()

	entries := []core.AuditEntry{
		{Viewer: core.RoleCoach, Owner: "owner-1", Action: core.ActionDataView, Status: core.StatusGranted, Details: "Active context"},
		{Viewer: core.RoleCommercialPartner, Owner: "owner-1", Action: core.ActionDataView, Status: core.StatusDenied, Details: "Athlete opted out"},
	}
	for _, entry := range entries {
		if err := auditor.Log(entry); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening mirror file: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var mirrored []core.AuditEntry
	for scanner.Scan() {
		var entry core.AuditEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decoding mirrored line: %v", err)
		}
		mirrored = append(mirrored, entry)
	}

	if len(mirrored) != len(entries) {
		t.Fatalf("mirrored %d lines, want %d", len(mirrored), len(entries))
	}
	for i, entry := range mirrored {
		if entry.Seq != uint64(i+1) {
			t.Errorf("line %d: Seq = %d, want %d", i, entry.Seq, i+1)
		}
		if entry.Details != entries[i].Details {
			t.Errorf("line %d: Details = %q, want %q", i, entry.Details, entries[i].Details)
		}
	}

	// the in-memory ledger matches the mirror
	mem, _ := auditor.List()
	if len(mem) != len(entries) {
		t.Errorf("in-memory ledger has %d entries, want %d", len(mem), len(entries))
	}
}

func TestFileAuditor_AppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	first, err := NewFileAuditor(path)
	if err != nil {
		t.Fatalf("NewFileAuditor() error = %v", err)
	}
	_ = first.Log(core.AuditEntry{Owner: "owner-1"})
	_ = first.Close()

	second, err := NewFileAuditor(path)
	if err != nil {
		t.Fatalf("NewFileAuditor() reopen error = %v", err)
	}
	_ = second.Log(core.AuditEntry{Owner: "owner-2"})
	_ = second.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading mirror file: %v", err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("mirror file has %d lines after reopen, want 2", lines)
	}
}
