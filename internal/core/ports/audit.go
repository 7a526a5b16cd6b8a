package ports

import (
	"context"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

// AuditRecorder accepts audit entries for asynchronous persistence. Record
// never blocks request handling and failures are not surfaced to callers.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, e *domain.AuditEntry) error
}
