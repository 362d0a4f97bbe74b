package service

import (
	"context"
	"errors"
	"testing"

	"github.com/recordstack/records-api/internal/core/ports"
)

type stubAuditLog struct {
	entries []ports.AuditEntry
	err     error
}

func (l *stubAuditLog) Append(entry ports.AuditEntry) error {
	if l.err != nil {
		return l.err
	}
	l.entries = append(l.entries, entry)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	log := &stubAuditLog{}
	svc := NewAuditService(log)

	entry := ports.AuditEntry{User: "testuser", Action: "an action"}
	if err := svc.Process(context.Background(), entry); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(log.entries) != 1 || log.entries[0] != entry {
		t.Fatalf("entry not appended: %+v", log.entries)
	}
}

func TestAuditService_Process_WriteFailure(t *testing.T) {
	sink := errors.New("disk full")
	svc := NewAuditService(&stubAuditLog{err: sink})

	err := svc.Process(context.Background(), ports.AuditEntry{User: "testuser"})
	if !errors.Is(err, sink) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}
