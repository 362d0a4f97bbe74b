// Package audit implements the append-only audit log file.
package audit

import (
	"fmt"
	"os"
	"sync"

	"github.com/recordstack/records-api/internal/core/ports"
)

// Writer appends one line per audit entry to a file. The file is created on
// first write; a mutex serializes appends from concurrent workers.
type Writer struct {
	path string
	mu   sync.Mutex
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Append writes "user <id> performed <action>" as a single line. The file
// handle is opened per call so a deleted or rotated file never wedges the
// writer.
func (w *Writer) Append(entry ports.AuditEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "user %s performed %s\n", entry.User, entry.Action); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}
