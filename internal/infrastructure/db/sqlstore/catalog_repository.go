package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// CatalogRepository implements ports.CatalogRepository.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(s *Store) *CatalogRepository {
	return &CatalogRepository{db: s.db}
}

func (r *CatalogRepository) FindCategoryIDByName(ctx context.Context, name string) (int64, error) {
	var row categoryRow
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrCategoryNotFound
		}
		return 0, fmt.Errorf("find category %q: %w", name, err)
	}
	return row.ID, nil
}

func (r *CatalogRepository) FindCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var row categoryRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	category := row.toDomain()
	return &category, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, name string) (int64, error) {
	row := categoryRow{Name: name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ErrDuplicateCategory
		}
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return row.ID, nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&categoryRow{})
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return 0, domain.ErrCategoryInUse
		}
		return 0, fmt.Errorf("delete category: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *CatalogRepository) CreateItem(ctx context.Context, item *domain.Item) (int64, error) {
	row := itemRow{
		Name:        item.Name,
		Price:       money(item.Price),
		Description: item.Description,
		Quantity:    item.Quantity,
		IsAvailable: item.IsAvailable,
		CategoryID:  item.CategoryID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrCategoryNotFound
		}
		return 0, fmt.Errorf("insert item: %w", err)
	}
	item.ID = row.ID
	return row.ID, nil
}

func (r *CatalogRepository) DeleteItem(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&itemRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete item: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	var rows []itemRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toDomain())
	}
	return categories, nil
}
