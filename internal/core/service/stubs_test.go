package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs shared by the service tests
// ---------------------------------------------------------------------------

type createdPerson struct {
	reg  domain.Registration
	hash string
}

type stubPeopleRepo struct {
	emailTaken bool
	existsErr  error
	createErr  error
	created    []createdPerson
	deleteRows int64
	clearRows  int64

	people    []domain.Person
	customers []domain.Customer
	employees []domain.Employee
	listCalls int
}

func (r *stubPeopleRepo) EmailExists(_ context.Context, _ string) (bool, error) {
	return r.emailTaken, r.existsErr
}

func (r *stubPeopleRepo) Create(_ context.Context, reg domain.Registration, hash string) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.created = append(r.created, createdPerson{reg: reg, hash: hash})
	return int64(len(r.created)), nil
}

func (r *stubPeopleRepo) Delete(_ context.Context, _ int64) (int64, error) {
	return r.deleteRows, nil
}

func (r *stubPeopleRepo) Clear(_ context.Context) (int64, error) {
	return r.clearRows, nil
}

func (r *stubPeopleRepo) ListPeople(_ context.Context) ([]domain.Person, error) {
	r.listCalls++
	return r.people, nil
}

func (r *stubPeopleRepo) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	r.listCalls++
	return r.customers, nil
}

func (r *stubPeopleRepo) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	r.listCalls++
	return r.employees, nil
}

type stubCatalogRepo struct {
	categories        []domain.Category
	items             []domain.Item
	createCategoryErr error
	deleteCategoryErr error
	deleteRows        int64
	createdItems      []domain.Item
	lookups           int
}

func (r *stubCatalogRepo) FindCategoryIDByName(_ context.Context, name string) (int64, error) {
	r.lookups++
	for _, c := range r.categories {
		if c.Name == name {
			return c.ID, nil
		}
	}
	return 0, domain.ErrCategoryNotFound
}

func (r *stubCatalogRepo) FindCategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCatalogRepo) CreateCategory(_ context.Context, name string) (int64, error) {
	if r.createCategoryErr != nil {
		return 0, r.createCategoryErr
	}
	id := int64(len(r.categories) + 1)
	r.categories = append(r.categories, domain.Category{ID: id, Name: name})
	return id, nil
}

func (r *stubCatalogRepo) DeleteCategory(_ context.Context, _ int64) (int64, error) {
	return r.deleteRows, r.deleteCategoryErr
}

func (r *stubCatalogRepo) CreateItem(_ context.Context, item *domain.Item) (int64, error) {
	item.ID = int64(len(r.createdItems) + 1)
	r.createdItems = append(r.createdItems, *item)
	return item.ID, nil
}

func (r *stubCatalogRepo) DeleteItem(_ context.Context, _ int64) (int64, error) {
	return r.deleteRows, nil
}

func (r *stubCatalogRepo) ListItems(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *stubCatalogRepo) ListCategories(_ context.Context) ([]domain.Category, error) {
	return r.categories, nil
}

type stubPatchStore struct {
	rows    map[domain.Table]int64
	errs    map[domain.Table]error
	applied []domain.FieldSet
}

func (s *stubPatchStore) ApplyPatch(_ context.Context, _ int64, set domain.FieldSet) (int64, error) {
	s.applied = append(s.applied, set)
	if err := s.errs[set.Table]; err != nil {
		return 0, err
	}
	if n, ok := s.rows[set.Table]; ok {
		return n, nil
	}
	return 1, nil
}

type stubHasher struct {
	err error
}

func (h stubHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

type stubAudit struct {
	events []domain.MutationEvent
}

func (a *stubAudit) Record(e domain.MutationEvent) {
	a.events = append(a.events, e)
}

type memCache struct {
	data        map[string][]byte
	invalidated []string
	gen         int64
	getErr      error
	genErr      error
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) Generation(context.Context) (int64, error) {
	return c.gen, c.genErr
}

func (c *memCache) Set(_ context.Context, key string, value any, gen int64) error {
	if gen != c.gen {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	c.invalidated = append(c.invalidated, keys...)
	c.gen++
	return nil
}

var errBoom = errors.New("boom")
