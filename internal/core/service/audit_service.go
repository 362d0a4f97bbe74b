package service

import (
	"context"
	"fmt"

	"github.com/recordstack/records-api/internal/core/ports"
)

// AuditService writes dequeued audit entries to the append-only log. It runs
// on the dispatcher worker, after the originating response has been sent.
type AuditService struct {
	log ports.AuditLog
}

func NewAuditService(log ports.AuditLog) *AuditService {
	return &AuditService{log: log}
}

// Process appends one entry. Failures are returned for the caller to log
// and count; nothing is retried.
func (s *AuditService) Process(_ context.Context, entry ports.AuditEntry) error {
	if err := s.log.Append(entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}
