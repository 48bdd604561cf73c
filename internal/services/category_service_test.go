package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givehub/internal/models/db_models"
	"givehub/pkg/utils"
)

func TestGetAllCategories(t *testing.T) {
	repo := &fakeCategoryRepo{
		listCategories: func(ctx context.Context) ([]db_models.Category, error) {
			return []db_models.Category{
				{ID: 1, Name: "Charity Auction", Description: "Silent and live auctions"},
				{ID: 2, Name: "Fun Run", Description: "Sponsored runs and walks"},
			}, nil
		},
	}
	svc := NewCategoryService(repo, testConfig(), testLogger())

	categories, err := svc.GetAllCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, int64(1), categories[0].ID)
	assert.Equal(t, "Charity Auction", categories[0].Name)
}

func TestGetAllCategoriesEmptyStore(t *testing.T) {
	repo := &fakeCategoryRepo{
		listCategories: func(ctx context.Context) ([]db_models.Category, error) {
			return nil, nil
		},
	}
	svc := NewCategoryService(repo, testConfig(), testLogger())

	categories, err := svc.GetAllCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestGetAllCategoriesWrapsStoreFailure(t *testing.T) {
	repo := &fakeCategoryRepo{
		listCategories: func(ctx context.Context) ([]db_models.Category, error) {
			return nil, errors.New("table missing")
		},
	}
	svc := NewCategoryService(repo, testConfig(), testLogger())

	categories, err := svc.GetAllCategories(context.Background())
	assert.Nil(t, categories)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
