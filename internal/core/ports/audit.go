package ports

import "context"

// AuditEntry is one deferred audit write: who did what.
type AuditEntry struct {
	User   string
	Action string
}

// AuditService processes audit entries dequeued by the background dispatcher.
type AuditService interface {
	Process(ctx context.Context, entry AuditEntry) error
}

// AuditLog is the append-only sink audit entries are written to.
type AuditLog interface {
	Append(entry AuditEntry) error
}
