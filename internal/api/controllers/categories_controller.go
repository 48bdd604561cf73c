package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"givehub/internal/services"
	"givehub/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
	logger          *zap.Logger
}

func NewCategoriesController(categoryService services.CategoryServiceInterface, logger *zap.Logger) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
		logger:          logger,
	}
}

func (cc *CategoriesController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondList(c, categories, len(categories), "")
}
