package repositories

import (
	"context"

	"gorm.io/gorm"

	"givehub/internal/models/db_models"
	"givehub/internal/models/response_models"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	ListOptions(ctx context.Context) ([]response_models.CategoryOption, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ListOptions returns the id/name pairs used by the search suggestion
// endpoint.
func (r *categoryRepository) ListOptions(ctx context.Context) ([]response_models.CategoryOption, error) {
	var options []response_models.CategoryOption
	err := r.db.WithContext(ctx).
		Raw("SELECT id, name FROM categories ORDER BY name").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}
