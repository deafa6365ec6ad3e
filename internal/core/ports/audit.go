package ports

import (
	"context"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// AuditRepository persists mutation events to the audit trail.
type AuditRepository interface {
	InsertMutationEvent(ctx context.Context, event *domain.MutationEvent) error
}

// AuditSink accepts events for asynchronous persistence. Record never blocks
// the caller on storage.
type AuditSink interface {
	Record(event domain.MutationEvent)
}

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
