package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

var (
	personCacheKeys  = []string{ports.CacheKeyPeople, ports.CacheKeyCustomers, ports.CacheKeyEmployees}
	catalogCacheKeys = []string{ports.CacheKeyItems, ports.CacheKeyCategories}
)

// recorder runs the side effects of a committed mutation: cache
// invalidation and the audit event. Neither can fail the mutation.
type recorder struct {
	audit ports.AuditSink
	cache ports.QueryCache
	log   zerolog.Logger
	now   func() time.Time
}

func newRecorder(audit ports.AuditSink, cache ports.QueryCache, log zerolog.Logger) recorder {
	return recorder{audit: audit, cache: cache, log: log, now: time.Now}
}

func (r recorder) record(ctx context.Context, op string, entity domain.Entity, id int64, fields []string, keys []string) {
	if r.cache != nil && len(keys) > 0 {
		if err := r.cache.Invalidate(ctx, keys...); err != nil {
			r.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
		}
	}

	if r.audit == nil {
		return
	}
	r.audit.Record(domain.MutationEvent{
		ID:         uuid.NewString(),
		Operation:  op,
		Entity:     entity,
		EntityID:   id,
		Fields:     fields,
		OccurredAt: r.now().UTC(),
	})
}
