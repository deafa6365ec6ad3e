package ports

import "context"

// QueryCache stores read results between mutations.
type QueryCache interface {
	// Get decodes the cached value for key into dst and reports a hit.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Generation returns a counter that every Invalidate advances.
	Generation(ctx context.Context) (int64, error)
	// Set stores value only while the generation still equals gen, so a
	// result loaded before an invalidation is never cached after it.
	Set(ctx context.Context, key string, value any, gen int64) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Cache keys of the read side.
const (
	CacheKeyPeople     = "query:people"
	CacheKeyCustomers  = "query:customers"
	CacheKeyEmployees  = "query:employees"
	CacheKeyItems      = "query:items"
	CacheKeyCategories = "query:categories"
)
