package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
)

func peopleFixture(n int) []domain.Person {
	out := make([]domain.Person, n)
	for i := range out {
		out[i] = domain.Person{ID: int64(i + 1), Name: fmt.Sprintf("p%d", i+1)}
	}
	return out
}

func TestQueryService_People_DefaultBound(t *testing.T) {
	repo := &stubPeopleRepo{people: peopleFixture(15)}
	svc := NewQueryService(repo, &stubCatalogRepo{}, nil, 0, zerolog.Nop())

	got, err := svc.People(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(got) != DefaultResultLimit {
		t.Errorf("expected %d people, got %d", DefaultResultLimit, len(got))
	}
}

func TestQueryService_People_ExplicitBound(t *testing.T) {
	repo := &stubPeopleRepo{people: peopleFixture(5)}
	svc := NewQueryService(repo, &stubCatalogRepo{}, nil, 10, zerolog.Nop())

	got, _ := svc.People(context.Background(), 3)
	if len(got) != 3 || got[2].ID != 3 {
		t.Errorf("expected first 3 people, got %+v", got)
	}

	got, _ = svc.People(context.Background(), 50)
	if len(got) != 5 {
		t.Errorf("expected all 5 people, got %d", len(got))
	}
}

func TestQueryService_CacheHitSkipsStore(t *testing.T) {
	repo := &stubPeopleRepo{customers: []domain.Customer{{Person: domain.Person{ID: 1, Name: "Ann"}}}}
	cache := newMemCache()
	svc := NewQueryService(repo, &stubCatalogRepo{}, cache, 10, zerolog.Nop())

	if _, err := svc.Customers(context.Background(), 0); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	got, err := svc.Customers(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if repo.listCalls != 1 {
		t.Errorf("expected a single store read, got %d", repo.listCalls)
	}
	if len(got) != 1 || got[0].Name != "Ann" {
		t.Errorf("unexpected cached customers: %+v", got)
	}
}

// invalidatingPeopleRepo runs during after each people listing, standing in
// for a mutation that commits while a read is in flight.
type invalidatingPeopleRepo struct {
	*stubPeopleRepo
	during func()
}

func (r invalidatingPeopleRepo) ListPeople(ctx context.Context) ([]domain.Person, error) {
	people, err := r.stubPeopleRepo.ListPeople(ctx)
	r.during()
	return people, err
}

func TestQueryService_InvalidationDuringLoadIsNotCached(t *testing.T) {
	cache := newMemCache()
	stale := true
	repo := invalidatingPeopleRepo{
		stubPeopleRepo: &stubPeopleRepo{people: peopleFixture(2)},
		during: func() {
			if stale {
				_ = cache.Invalidate(context.Background(), "query:people")
			}
		},
	}
	svc := NewQueryService(repo, &stubCatalogRepo{}, cache, 10, zerolog.Nop())

	if _, err := svc.People(context.Background(), 0); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if _, ok := cache.data["query:people"]; ok {
		t.Fatal("expected result loaded before the invalidation to stay uncached")
	}

	stale = false
	if _, err := svc.People(context.Background(), 0); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if _, ok := cache.data["query:people"]; !ok {
		t.Fatal("expected an undisturbed load to be cached")
	}
	if repo.listCalls != 2 {
		t.Errorf("expected two store reads, got %d", repo.listCalls)
	}
}

func TestQueryService_GenerationErrorSkipsCacheWrite(t *testing.T) {
	repo := &stubPeopleRepo{people: peopleFixture(1)}
	cache := newMemCache()
	cache.genErr = errBoom
	svc := NewQueryService(repo, &stubCatalogRepo{}, cache, 10, zerolog.Nop())

	got, err := svc.People(context.Background(), 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected store result, got (%v, %v)", got, err)
	}
	if len(cache.data) != 0 {
		t.Errorf("expected nothing cached without a generation")
	}
}

func TestQueryService_CacheErrorFallsBackToStore(t *testing.T) {
	repo := &stubPeopleRepo{employees: []domain.Employee{{Person: domain.Person{ID: 1}}}}
	cache := newMemCache()
	cache.getErr = errBoom
	svc := NewQueryService(repo, &stubCatalogRepo{}, cache, 10, zerolog.Nop())

	got, err := svc.Employees(context.Background(), 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected store result, got (%v, %v)", got, err)
	}
}

func TestQueryService_Items_ResolvesCategory(t *testing.T) {
	catalog := &stubCatalogRepo{
		categories: []domain.Category{{ID: 2, Name: "Home"}},
		items:      []domain.Item{{ID: 1, Name: "Lamp", CategoryID: 2}},
	}
	svc := NewQueryService(&stubPeopleRepo{}, catalog, nil, 10, zerolog.Nop())

	got, err := svc.Items(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got[0].Category == nil || got[0].Category.Name != "Home" {
		t.Errorf("expected category Home, got %+v", got[0].Category)
	}
}

func TestQueryService_Items_MissingCategoryFailsRead(t *testing.T) {
	catalog := &stubCatalogRepo{items: []domain.Item{{ID: 1, Name: "Lamp", CategoryID: 9}}}
	svc := NewQueryService(&stubPeopleRepo{}, catalog, nil, 10, zerolog.Nop())

	_, err := svc.Items(context.Background(), 0)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got: %v", err)
	}
}

func TestQueryService_Categories(t *testing.T) {
	catalog := &stubCatalogRepo{categories: []domain.Category{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}
	svc := NewQueryService(&stubPeopleRepo{}, catalog, nil, 10, zerolog.Nop())

	got, err := svc.Categories(context.Background(), 1)
	if err != nil || len(got) != 1 || got[0].Name != "A" {
		t.Errorf("expected first category, got (%+v, %v)", got, err)
	}
}
