package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// PatchEngine applies sparse field sets. Every present field is validated
// and every reference resolved before the first write; a set that passes is
// written as one statement in one transaction.
type PatchEngine struct {
	store      ports.PatchStore
	categories *CategoryResolver
	hasher     ports.PasswordHasher
	log        zerolog.Logger
}

func NewPatchEngine(store ports.PatchStore, categories *CategoryResolver, hasher ports.PasswordHasher, log zerolog.Logger) *PatchEngine {
	return &PatchEngine{store: store, categories: categories, hasher: hasher, log: log}
}

// Patch applies set to the row identified by id and returns the number of
// rows changed. An empty set changes nothing and returns 0.
func (e *PatchEngine) Patch(ctx context.Context, id int64, set domain.FieldSet) (int64, error) {
	if err := set.Validate(); err != nil {
		return 0, err
	}
	if set.Empty() {
		return 0, nil
	}

	prepared, err := e.prepare(ctx, set)
	if err != nil {
		return 0, err
	}

	rows, err := e.store.ApplyPatch(ctx, id, prepared)
	if err != nil {
		return 0, fmt.Errorf("patch %s %d: %w", set.Table, id, err)
	}
	return rows, nil
}

// PatchComposite applies one field set per table to the same id. All sets
// are validated up front, so a single invalid field aborts the call with no
// writes. Each set then commits on its own; the result lists every table's
// outcome. An error is returned only when validation fails or when no table
// succeeded and at least one failed.
func (e *PatchEngine) PatchComposite(ctx context.Context, id int64, sets ...domain.FieldSet) (*domain.CompositeResult, error) {
	for _, set := range sets {
		if err := set.Validate(); err != nil {
			return nil, err
		}
	}

	prepared := make([]domain.FieldSet, len(sets))
	for i, set := range sets {
		p, err := e.prepare(ctx, set)
		if err != nil {
			return nil, err
		}
		prepared[i] = p
	}

	result := &domain.CompositeResult{Tables: make([]domain.TableResult, 0, len(prepared))}
	var errs []error
	for _, set := range prepared {
		if set.Empty() {
			result.Tables = append(result.Tables, domain.TableResult{Table: set.Table})
			continue
		}

		rows, err := e.store.ApplyPatch(ctx, id, set)
		if err != nil {
			e.log.Warn().Err(err).Int64("id", id).Str("table", string(set.Table)).Msg("composite sub-update failed")
			errs = append(errs, fmt.Errorf("patch %s %d: %w", set.Table, id, err))
		}
		result.Tables = append(result.Tables, domain.TableResult{Table: set.Table, RowsAffected: rows, Err: err})
	}

	if !result.Succeeded() && len(errs) > 0 {
		return result, errors.Join(errs...)
	}
	return result, nil
}

// prepare rewrites fields that cannot be stored as supplied: a category name
// becomes the category id, a password becomes its hash.
func (e *PatchEngine) prepare(ctx context.Context, set domain.FieldSet) (domain.FieldSet, error) {
	if f, ok := set.Lookup(domain.FieldCategory); ok {
		if e.categories == nil {
			return set, fmt.Errorf("%w: %s", domain.ErrUnknownField, domain.FieldCategory)
		}
		id, err := e.categories.Resolve(ctx, f.Value.(string))
		if err != nil {
			return set, err
		}
		set = set.Replace(domain.FieldCategory, domain.Field{Name: domain.FieldCategoryID, Kind: domain.KindInt, Value: id})
	}

	if f, ok := set.Lookup(domain.FieldPassword); ok {
		if e.hasher == nil {
			return set, fmt.Errorf("%w: %s", domain.ErrUnknownField, domain.FieldPassword)
		}
		hash, err := e.hasher.Hash(f.Value.(string))
		if err != nil {
			return set, fmt.Errorf("hash password: %w", err)
		}
		set = set.Replace(domain.FieldPassword, domain.Field{Name: domain.FieldPassword, Kind: domain.KindString, Value: hash})
	}

	return set, nil
}
