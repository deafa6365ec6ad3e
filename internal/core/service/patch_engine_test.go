package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
)

func newEngine(store *stubPatchStore, catalog *stubCatalogRepo) *PatchEngine {
	return NewPatchEngine(store, NewCategoryResolver(catalog), stubHasher{}, zerolog.Nop())
}

func TestPatchEngine_Patch_OnlyPresentFieldsWritten(t *testing.T) {
	store := &stubPatchStore{}
	e := newEngine(store, &stubCatalogRepo{})

	rows, err := e.Patch(context.Background(), 7, domain.ItemPatch{Price: domain.Some(12.5)}.FieldSet())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row, got %d", rows)
	}
	if len(store.applied) != 1 {
		t.Fatalf("expected one statement, got %d", len(store.applied))
	}
	if names := store.applied[0].Names(); len(names) != 1 || names[0] != domain.FieldPrice {
		t.Errorf("expected only price, got %v", names)
	}
}

func TestPatchEngine_Patch_EmptySetIsNoop(t *testing.T) {
	store := &stubPatchStore{}
	e := newEngine(store, &stubCatalogRepo{})

	rows, err := e.Patch(context.Background(), 7, domain.ItemPatch{}.FieldSet())
	if err != nil || rows != 0 {
		t.Fatalf("expected (0, nil), got (%d, %v)", rows, err)
	}
	if len(store.applied) != 0 {
		t.Errorf("expected no write for an empty set")
	}
}

func TestPatchEngine_Patch_InvalidFieldAbortsWithoutWrite(t *testing.T) {
	store := &stubPatchStore{}
	e := newEngine(store, &stubCatalogRepo{})

	patch := domain.ItemPatch{Name: domain.Some("Lamp"), Quantity: domain.Some(0)}
	_, err := e.Patch(context.Background(), 7, patch.FieldSet())

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != domain.FieldQuantity {
		t.Fatalf("expected quantity violation, got: %v", err)
	}
	if len(store.applied) != 0 {
		t.Errorf("expected no write after a validation failure")
	}
}

func TestPatchEngine_Patch_ResolvesCategoryName(t *testing.T) {
	store := &stubPatchStore{}
	catalog := &stubCatalogRepo{categories: []domain.Category{{ID: 4, Name: "Home"}}}
	e := newEngine(store, catalog)

	_, err := e.Patch(context.Background(), 7, domain.ItemPatch{Category: domain.Some("Home")}.FieldSet())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	f, ok := store.applied[0].Lookup(domain.FieldCategoryID)
	if !ok || f.Value != int64(4) {
		t.Errorf("expected categoryId 4 to be written, got %+v", store.applied[0])
	}
}

func TestPatchEngine_Patch_UnknownCategoryFails(t *testing.T) {
	store := &stubPatchStore{}
	e := newEngine(store, &stubCatalogRepo{})

	_, err := e.Patch(context.Background(), 7, domain.ItemPatch{Category: domain.Some("Garden")}.FieldSet())
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got: %v", err)
	}
	if len(store.applied) != 0 {
		t.Errorf("expected no write for an unknown category")
	}
}

func TestPatchEngine_PatchComposite_HashesPassword(t *testing.T) {
	store := &stubPatchStore{}
	e := newEngine(store, &stubCatalogRepo{})

	_, err := e.PatchComposite(context.Background(), 3,
		domain.CredentialPatch{Password: domain.Some("newpass")}.FieldSet())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	f, _ := store.applied[0].Lookup(domain.FieldPassword)
	if f.Value != "hashed:newpass" {
		t.Errorf("expected hashed password to be stored, got %v", f.Value)
	}
}

func TestPatchEngine_PatchComposite_OverlongPasswordRejected(t *testing.T) {
	store := &stubPatchStore{}
	e := NewPatchEngine(store, nil, NewBcryptHasher(0), zerolog.Nop())

	_, err := e.PatchComposite(context.Background(), 3,
		domain.PersonPatch{Name: domain.Some("Bob")}.FieldSet(),
		domain.CredentialPatch{Password: domain.Some(strings.Repeat("p", domain.MaxPasswordBytes+1))}.FieldSet(),
	)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got: %v", err)
	}
	if len(store.applied) != 0 {
		t.Errorf("expected no table written, got %d", len(store.applied))
	}
}

func TestPatchEngine_PatchComposite_ValidationAbortsAllTables(t *testing.T) {
	store := &stubPatchStore{}
	e := newEngine(store, &stubCatalogRepo{})

	_, err := e.PatchComposite(context.Background(), 3,
		domain.PersonPatch{Name: domain.Some("Bob")}.FieldSet(),
		domain.EmployeePatch{Salary: domain.Some(-5.0)}.FieldSet(),
	)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got: %v", err)
	}
	if len(store.applied) != 0 {
		t.Errorf("expected no table written, got %d", len(store.applied))
	}
}

func TestPatchEngine_PatchComposite_AnyTableSucceeds(t *testing.T) {
	store := &stubPatchStore{errs: map[domain.Table]error{domain.TableCustomers: domain.ErrPersistence}}
	e := newEngine(store, &stubCatalogRepo{})

	res, err := e.PatchComposite(context.Background(), 3,
		domain.PersonPatch{Age: domain.Some(40)}.FieldSet(),
		domain.CustomerPatch{ShippingAddress: domain.Some("2 Side St")}.FieldSet(),
		domain.CredentialPatch{}.FieldSet(),
	)
	if err != nil {
		t.Fatalf("expected partial success without error, got: %v", err)
	}
	if !res.Succeeded() {
		t.Errorf("expected composite to succeed")
	}
	if len(res.Tables) != 3 {
		t.Fatalf("expected a result per table, got %d", len(res.Tables))
	}
	if res.Tables[1].Err == nil {
		t.Errorf("expected customers failure to be reported")
	}
	if res.Tables[2].RowsAffected != 0 || res.Tables[2].Err != nil {
		t.Errorf("expected empty credentials set to be skipped")
	}
	if len(store.applied) != 2 {
		t.Errorf("expected two statements, got %d", len(store.applied))
	}
}

func TestPatchEngine_PatchComposite_AllFailedReturnsError(t *testing.T) {
	store := &stubPatchStore{errs: map[domain.Table]error{
		domain.TablePeople:    domain.ErrDuplicateEmail,
		domain.TableEmployees: domain.ErrPersistence,
	}}
	e := newEngine(store, &stubCatalogRepo{})

	res, err := e.PatchComposite(context.Background(), 3,
		domain.PersonPatch{Email: domain.Some("taken@example.com")}.FieldSet(),
		domain.EmployeePatch{Department: domain.Some(domain.DepartmentHR)}.FieldSet(),
	)
	if !errors.Is(err, domain.ErrDuplicateEmail) || !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected joined errors, got: %v", err)
	}
	if res == nil || res.Succeeded() {
		t.Errorf("expected a failed result")
	}
}
