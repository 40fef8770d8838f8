package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"budget-watch/internal/models"
	"budget-watch/internal/repositories"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       slog.Default(),
	}
}

// ListCategories returns every category ordered by name
func (s *CategoryService) ListCategories(_ context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// EnsureSystemCategories creates the system categories that do not exist yet
// and returns how many were created
func (s *CategoryService) EnsureSystemCategories(_ context.Context) (int, error) {
	created := 0
	for _, category := range models.SystemCategories() {
		_, err := s.categoryRepo.GetByName(category.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrCategoryNotFound) {
			return created, fmt.Errorf("failed to look up category %q: %w", category.Name, err)
		}

		if err := s.categoryRepo.Create(&category); err != nil {
			return created, fmt.Errorf("failed to create category %q: %w", category.Name, err)
		}
		created++
	}

	if created > 0 {
		s.logger.Info("system categories seeded", slog.Int("created", created))
	}
	return created, nil
}
