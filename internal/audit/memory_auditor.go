package audit

import (
	"sync"

	"github.com/vigil-sh/vigil/internal/core"
)

var _ core.Auditor = (*MemoryAuditor)(nil)

// MemoryAuditor is the canonical session ledger: append-only, insertion
// order, monotonic sequence numbers assigned under the lock.
type MemoryAuditor struct {
	mu      sync.Mutex
	seq     uint64
	entries []core.AuditEntry
}

func NewMemoryAuditor() *MemoryAuditor {
	return &MemoryAuditor{
		entries: make([]core.AuditEntry, 0),
	}
}

func (m *MemoryAuditor) Log(entry core.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	entry.Seq = m.seq
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryAuditor) List() ([]core.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]core.AuditEntry, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}

func (m *MemoryAuditor) GetRecent(limit int) ([]core.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// non-positive limits yield nothing rather than panicking
	if limit < 0 {
		limit = 0
	}
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	start := len(m.entries) - limit
	entries := make([]core.AuditEntry, limit)
	copy(entries, m.entries[start:])

	return entries, nil
}

func (m *MemoryAuditor) Find(filter func(entry core.AuditEntry) bool, limit int) ([]core.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matches []core.AuditEntry
	for _, entry := range m.entries {
		if filter(entry) {
			matches = append(matches, entry)
		}
	}

	if limit < 0 {
		limit = 0
	}
	if len(matches) > limit {
		matches = matches[len(matches)-limit:]
	}

	return matches, nil
}

func (m *MemoryAuditor) Close() error {
	return nil // nothing to close :)
}
