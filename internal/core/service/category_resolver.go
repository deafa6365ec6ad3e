package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// CategoryResolver checks that a named category exists before an item is
// written with a reference to it.
type CategoryResolver struct {
	repo ports.CatalogRepository
}

func NewCategoryResolver(repo ports.CatalogRepository) *CategoryResolver {
	return &CategoryResolver{repo: repo}
}

// Resolve returns the id of the category called name, or
// domain.ErrCategoryNotFound. It never falls back to a default category.
func (r *CategoryResolver) Resolve(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, domain.ErrCategoryNotFound
	}
	id, err := r.repo.FindCategoryIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("resolve category %q: %w", name, err)
	}
	return id, nil
}
