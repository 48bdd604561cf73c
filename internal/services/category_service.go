package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"givehub/internal/config"
	"givehub/internal/models/response_models"
	"givehub/internal/repositories"
	"givehub/pkg/utils"
)

type CategoryServiceInterface interface {
	GetAllCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	queryTimeout time.Duration
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, cfg *config.Config, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, response_models.CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}
	return responses, nil
}
