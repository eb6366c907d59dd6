package service

import (
	"context"

	"foodgram/internal/cache"
	"foodgram/internal/models"
	"foodgram/internal/repository"
)

// CatalogService serves the tag and ingredient reference data. The tag list
// is small and read-heavy, so it goes through the cache; ingredient search
// always hits the store.
type CatalogService struct {
	catalog repository.CatalogRepository
}

func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListTags(ctx context.Context) ([]models.Tag, error) {
	if tags, ok := cache.GetTags(ctx); ok {
		return tags, nil
	}
	tags, err := s.catalog.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	cache.SetTags(ctx, tags)
	return tags, nil
}

func (s *CatalogService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return s.catalog.GetTagByID(ctx, id)
}

func (s *CatalogService) CreateTag(ctx context.Context, tag *models.Tag) error {
	if tag.Name == "" || tag.Slug == "" {
		return models.NewValidationError("tag name and slug are required")
	}
	if err := s.catalog.CreateTag(ctx, tag); err != nil {
		return err
	}
	cache.InvalidateTags(ctx)
	return nil
}

func (s *CatalogService) SearchIngredients(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error) {
	return s.catalog.SearchIngredients(ctx, namePrefix, limit)
}

func (s *CatalogService) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	return s.catalog.GetIngredientByID(ctx, id)
}

// ImportIngredients bulk-loads catalog rows, used by the seed command.
func (s *CatalogService) ImportIngredients(ctx context.Context, ingredients []models.Ingredient) error {
	for _, ing := range ingredients {
		if ing.Name == "" || ing.MeasurementUnit == "" {
			return models.NewValidationError("ingredient name and measurement unit are required")
		}
	}
	return s.catalog.CreateIngredients(ctx, ingredients)
}
