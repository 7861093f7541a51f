package service

import (
	"context"
	"strings"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/microservices/http-api/repository"

	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id, name string) (*models.Category, error)
	// Delete removes the category and returns it; its posts are kept uncategorized.
	Delete(ctx context.Context, id string) (*models.Category, error)
	// Resolve finds the category named name (case-insensitively) or creates it
	// under the normalized name. Concurrent callers end up with the same row.
	Resolve(ctx context.Context, name string) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, logger: logger}
}

// NormalizeCategoryName trims and lowercases a free-text category name.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, BadInput("Category name is required")
	}

	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, BadInput("Category name is required")
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, NotFound("Category not found")
		}
		return nil, err
	}

	if err := s.ensureNameFree(ctx, name, id); err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ensureNameFree fails when another category already uses name in any case.
func (s *categoryService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	switch {
	case err == nil && existing.ID != selfID:
		return newError(dto.CodeAlreadyExists, "Category already exists")
	case err != nil && !IsNotFound(err):
		return err
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, NotFound("Category not found")
		}
		return nil, err
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Resolve(ctx context.Context, name string) (*models.Category, error) {
	normalized := NormalizeCategoryName(name)
	if normalized == "" {
		return nil, BadInput("Category name is required")
	}

	category, err := s.categoryRepo.FindByName(ctx, normalized)
	if err == nil {
		return category, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	category = &models.Category{Name: normalized}
	createErr := s.categoryRepo.Create(ctx, category)
	if createErr == nil {
		return category, nil
	}

	// lost the race against a concurrent create: use the winner's row
	if HandleDataAccessError(createErr).Code == dto.CodeAlreadyExists {
		existing, err := s.categoryRepo.FindByName(ctx, normalized)
		if err == nil {
			s.logger.Debug("category created concurrently", zap.String("name", normalized))
			return existing, nil
		}
	}
	return nil, createErr
}
