package categories_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"givehub/internal/config"
	"givehub/internal/repositories"
	"givehub/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, cfg *config.Config, logger *zap.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, cfg, logger)
}
