package mock

import (
	"context"

	"github.com/avoronin/trendscout"
)

var _ trendscout.AuditLog = (*AuditLog)(nil)

// AuditLog is a mock implementation of trendscout.AuditLog.
type AuditLog struct {
	AppendFn func(ctx context.Context, doc *trendscout.Document) error
}

func (l *AuditLog) Append(ctx context.Context, doc *trendscout.Document) error {
	return l.AppendFn(ctx, doc)
}
