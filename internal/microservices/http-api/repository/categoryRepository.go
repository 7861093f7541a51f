package repository

import (
	"context"
	"fmt"

	"bloghub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id string) (*models.Category, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// Delete detaches the category's posts and removes the category.
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var c models.Category
	// served by idx_categories_name_lower
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	res := r.db.WithContext(ctx).Model(&models.Category{ID: category.ID}).Update("name", category.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach posts: %w", err)
		}

		res := tx.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
