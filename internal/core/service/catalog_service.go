package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// CatalogService implements ports.CatalogService.
type CatalogService struct {
	repo       ports.CatalogRepository
	categories *CategoryResolver
	engine     *PatchEngine
	rec        recorder
	log        zerolog.Logger
}

func NewCatalogService(
	repo ports.CatalogRepository,
	categories *CategoryResolver,
	engine *PatchEngine,
	audit ports.AuditSink,
	cache ports.QueryCache,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		repo:       repo,
		categories: categories,
		engine:     engine,
		rec:        newRecorder(audit, cache, log),
		log:        log,
	}
}

func (s *CatalogService) AddCategory(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, &domain.ValidationError{Field: domain.FieldName, Reason: domain.ReasonEmpty}
	}

	id, err := s.repo.CreateCategory(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCategory) {
			return 0, err
		}
		s.log.Error().Err(err).Str("category", name).Msg("failed to add category")
		return 0, fmt.Errorf("add category: %w", err)
	}

	s.rec.record(ctx, "addCategory", domain.EntityCategory, id, []string{domain.FieldName}, catalogCacheKeys)
	s.log.Info().Int64("id", id).Str("category", name).Msg("category added")
	return id, nil
}

// EditCategory renames a category through the patch engine.
func (s *CatalogService) EditCategory(ctx context.Context, id int64, name string) (bool, error) {
	set := domain.FieldSet{
		Table:  domain.TableCategories,
		Fields: []domain.Field{{Name: domain.FieldName, Kind: domain.KindString, Value: name}},
	}
	rows, err := s.engine.Patch(ctx, id, set)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	s.rec.record(ctx, "editCategory", domain.EntityCategory, id, set.Names(), catalogCacheKeys)
	s.log.Info().Int64("id", id).Msg("category edited")
	return true, nil
}

// DeleteCategory reports false when the category does not exist or is still
// referenced by items.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	rows, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryInUse) {
			s.log.Warn().Int64("id", id).Msg("category still referenced by items")
			return false, nil
		}
		return false, fmt.Errorf("delete category %d: %w", id, err)
	}
	if rows == 0 {
		return false, nil
	}

	s.rec.record(ctx, "deleteCategory", domain.EntityCategory, id, nil, catalogCacheKeys)
	s.log.Info().Int64("id", id).Msg("category deleted")
	return true, nil
}

// AddItem resolves the named category first, then checks the item
// parameters. Either failure returns before any write.
func (s *CatalogService) AddItem(ctx context.Context, in domain.NewItem) (int64, error) {
	categoryID, err := s.categories.Resolve(ctx, in.CategoryName)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			s.log.Warn().Str("category", in.CategoryName).Msg("item rejected: category does not exist")
		}
		return 0, err
	}
	if !in.Valid() {
		s.log.Warn().Str("item", in.Name).Float64("price", in.Price).Msg("item rejected: invalid parameters")
		return 0, domain.ErrInvalidParameters
	}

	item := &domain.Item{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Quantity:    in.Quantity,
		IsAvailable: in.IsAvailable,
		CategoryID:  categoryID,
	}
	id, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		s.log.Error().Err(err).Str("item", in.Name).Msg("failed to add item")
		return 0, fmt.Errorf("add item: %w", err)
	}

	s.rec.record(ctx, "addItem", domain.EntityItem, id, nil, catalogCacheKeys)
	s.log.Info().Int64("id", id).Str("item", in.Name).Float64("price", in.Price).Msg("item added")
	return id, nil
}

func (s *CatalogService) EditItem(ctx context.Context, id int64, patch domain.ItemPatch) (int64, error) {
	set := patch.FieldSet()
	rows, err := s.engine.Patch(ctx, id, set)
	if err != nil {
		return 0, err
	}
	if rows > 0 {
		s.rec.record(ctx, "editItem", domain.EntityItem, id, set.Names(), catalogCacheKeys)
		s.log.Info().Int64("id", id).Strs("fields", set.Names()).Msg("item edited")
	}
	return rows, nil
}

func (s *CatalogService) DeleteItem(ctx context.Context, id int64) (bool, error) {
	rows, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete item %d: %w", id, err)
	}
	if rows == 0 {
		return false, nil
	}

	s.rec.record(ctx, "deleteItem", domain.EntityItem, id, nil, catalogCacheKeys)
	s.log.Info().Int64("id", id).Msg("item deleted")
	return true, nil
}
