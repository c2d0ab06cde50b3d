package audit

import "github.com/vigil-sh/vigil/internal/core"

var _ core.Auditor = (*NoopAuditor)(nil)

// NoopAuditor discards everything. Used for local one-shot CLI
// evaluations that must not pollute a ledger.
type NoopAuditor struct{}

func NewNoopAuditor() *NoopAuditor {
	return &NoopAuditor{}
}

func (n *NoopAuditor) Log(_ core.AuditEntry) error {
	// noop
	return nil
}

func (n *NoopAuditor) List() ([]core.AuditEntry, error) {
	return nil, nil
}

func (n *NoopAuditor) GetRecent(_ int) ([]core.AuditEntry, error) {
	return nil, nil
}

func (n *NoopAuditor) Find(_ func(entry core.AuditEntry) bool, _ int) ([]core.AuditEntry, error) {
	return nil, nil
}

func (n *NoopAuditor) Close() error {
	// nothing to close
	return nil
}
