package ports

import (
	"context"
	"time"

	"github.com/communityhub/platform-api/internal/core/domain"
)

// AuditEntry is the in-flight form of an audit record, produced by the auth
// flows and consumed by the async audit pipeline.
type AuditEntry struct {
	Action  string
	Subject string
	ActorID string
	Detail  string
	At      time.Time
}

// AuditRecorder accepts entries for asynchronous persistence. Record must
// not block the calling request beyond queue backpressure.
type AuditRecorder interface {
	Record(entry AuditEntry)
}

type AuditRepository interface {
	Insert(ctx context.Context, rec *domain.AuditRecord) error
	FindRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}
