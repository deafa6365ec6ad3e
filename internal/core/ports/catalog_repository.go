package ports

import (
	"context"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// CatalogRepository persists categories and items.
type CatalogRepository interface {
	// FindCategoryIDByName returns domain.ErrCategoryNotFound when no
	// category carries name.
	FindCategoryIDByName(ctx context.Context, name string) (int64, error)
	// FindCategoryByID returns domain.ErrCategoryNotFound when id is unknown.
	FindCategoryByID(ctx context.Context, id int64) (*domain.Category, error)

	// CreateCategory returns domain.ErrDuplicateCategory when name is taken.
	CreateCategory(ctx context.Context, name string) (int64, error)
	// DeleteCategory returns domain.ErrCategoryInUse while items reference it.
	DeleteCategory(ctx context.Context, id int64) (int64, error)

	// CreateItem inserts an item whose CategoryID is already resolved.
	CreateItem(ctx context.Context, item *domain.Item) (int64, error)
	DeleteItem(ctx context.Context, id int64) (int64, error)

	// ListItems returns items without their Category populated.
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
