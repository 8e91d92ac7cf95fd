// Package fs provides file-based audit logging for ingested documents.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/avoronin/trendscout"
)

// Ensure AuditLog implements trendscout.AuditLog at compile time.
var _ trendscout.AuditLog = (*AuditLog)(nil)

// AuditLog appends every ingested document as one JSON line to a corpus
// log file. The log is append-only and never read back by the pipeline;
// it exists for external auditing and replay.
type AuditLog struct {
	mu   sync.Mutex
	path string
}

// NewAuditLog creates an AuditLog writing to the given path.
// The file is created on first append.
func NewAuditLog(path string) *AuditLog {
	return &AuditLog{path: path}
}

// Append writes the document as a single JSON line.
func (l *AuditLog) Append(ctx context.Context, doc *trendscout.Document) error {
	line, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}
