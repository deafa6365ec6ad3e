package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// DefaultResultLimit bounds list reads when the caller gives no bound.
const DefaultResultLimit = 10

// QueryService implements ports.QueryService. Each read fetches the full
// list (from cache when possible) and then bounds it.
type QueryService struct {
	people       ports.PeopleRepository
	catalog      ports.CatalogRepository
	cache        ports.QueryCache
	defaultLimit int
	log          zerolog.Logger
}

func NewQueryService(
	people ports.PeopleRepository,
	catalog ports.CatalogRepository,
	cache ports.QueryCache,
	defaultLimit int,
	log zerolog.Logger,
) *QueryService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultResultLimit
	}
	return &QueryService{
		people:       people,
		catalog:      catalog,
		cache:        cache,
		defaultLimit: defaultLimit,
		log:          log,
	}
}

func (s *QueryService) People(ctx context.Context, limit int) ([]domain.Person, error) {
	all, err := loadCached(ctx, s, ports.CacheKeyPeople, s.people.ListPeople)
	if err != nil {
		return nil, fmt.Errorf("get people: %w", err)
	}
	return bound(all, s.limit(limit)), nil
}

func (s *QueryService) Customers(ctx context.Context, limit int) ([]domain.Customer, error) {
	all, err := loadCached(ctx, s, ports.CacheKeyCustomers, s.people.ListCustomers)
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}
	return bound(all, s.limit(limit)), nil
}

func (s *QueryService) Employees(ctx context.Context, limit int) ([]domain.Employee, error) {
	all, err := loadCached(ctx, s, ports.CacheKeyEmployees, s.people.ListEmployees)
	if err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}
	return bound(all, s.limit(limit)), nil
}

// Items resolves every item's category with a lookup by id. A missing
// category fails the whole read.
func (s *QueryService) Items(ctx context.Context, limit int) ([]domain.Item, error) {
	all, err := loadCached(ctx, s, ports.CacheKeyItems, s.itemsWithCategory)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	return bound(all, s.limit(limit)), nil
}

func (s *QueryService) Categories(ctx context.Context, limit int) ([]domain.Category, error) {
	all, err := loadCached(ctx, s, ports.CacheKeyCategories, s.catalog.ListCategories)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return bound(all, s.limit(limit)), nil
}

func (s *QueryService) itemsWithCategory(ctx context.Context) ([]domain.Item, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		category, err := s.catalog.FindCategoryByID(ctx, items[i].CategoryID)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", items[i].ID, err)
		}
		items[i].Category = category
	}
	return items, nil
}

func (s *QueryService) limit(requested int) int {
	if requested <= 0 {
		return s.defaultLimit
	}
	return requested
}

// loadCached serves key from the cache or loads and caches it. The cache
// generation is read before loading; a mutation invalidating in between makes
// the write a no-op.
func loadCached[T any](ctx context.Context, s *QueryService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	cacheable := false
	var gen int64
	if s.cache != nil {
		var cached []T
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to store")
		} else if hit {
			return cached, nil
		}

		gen, err = s.cache.Generation(ctx)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache generation unavailable, skipping write")
		} else {
			cacheable = true
		}
	}

	rows, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, key, rows, gen); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return rows, nil
}

func bound[T any](rows []T, n int) []T {
	if len(rows) <= n {
		return rows
	}
	return rows[:n]
}
