package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/vigil-sh/vigil/internal/core"
)

var _ core.Auditor = (*FileAuditor)(nil)

// FileAuditor keeps the in-memory ledger and additionally mirrors every
// entry to a JSONL file. A failed file write is surfaced to the caller;
// the entry is still retained in memory so the ledger never drops records.
type FileAuditor struct {
	mu      sync.Mutex
	mem     *MemoryAuditor
	file    *os.File
	encoder *json.Encoder
}

func NewFileAuditor(filePath string) (*FileAuditor, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening audit log file: %w", err)
	}
	return &FileAuditor{
		mem:     NewMemoryAuditor(),
		file:    file,
		encoder: json.NewEncoder(file),
	}, nil
}

func (f *FileAuditor) Log(entry core.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.mem.Log(entry); err != nil {
		return err
	}

	// re-read the entry so the mirrored record carries its sequence number
	entries, _ := f.mem.GetRecent(1)
	if len(entries) == 1 {
		entry = entries[0]
	}

	if err := f.encoder.Encode(entry); err != nil {
		return fmt.Errorf("writing audit log entry: %w", err)
	}
	return nil
}

func (f *FileAuditor) List() ([]core.AuditEntry, error) {
	return f.mem.List()
}

func (f *FileAuditor) GetRecent(limit int) ([]core.AuditEntry, error) {
	return f.mem.GetRecent(limit)
}

func (f *FileAuditor) Find(filter func(entry core.AuditEntry) bool, limit int) ([]core.AuditEntry, error) {
	return f.mem.Find(filter, limit)
}

func (f *FileAuditor) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}
