package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"givehub/internal/config"
	"givehub/internal/models/db_models"
	"givehub/internal/models/request_models"
	"givehub/internal/models/response_models"
)

type fakeEventRepo struct {
	listEvents         func(ctx context.Context, filters request_models.EventFilters) ([]response_models.EventWithCategory, error)
	listActiveUpcoming func(ctx context.Context, now time.Time) ([]response_models.EventWithCategory, error)
	getEventByID       func(ctx context.Context, id int64) (*response_models.EventWithCategory, error)
	summaryStats       func(ctx context.Context) (*response_models.SummaryStats, error)
	distinctLocations  func(ctx context.Context) ([]string, error)
}

func (f *fakeEventRepo) ListEvents(ctx context.Context, filters request_models.EventFilters) ([]response_models.EventWithCategory, error) {
	return f.listEvents(ctx, filters)
}

func (f *fakeEventRepo) ListActiveUpcoming(ctx context.Context, now time.Time) ([]response_models.EventWithCategory, error) {
	return f.listActiveUpcoming(ctx, now)
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id int64) (*response_models.EventWithCategory, error) {
	return f.getEventByID(ctx, id)
}

func (f *fakeEventRepo) SummaryStats(ctx context.Context) (*response_models.SummaryStats, error) {
	return f.summaryStats(ctx)
}

func (f *fakeEventRepo) DistinctActiveLocations(ctx context.Context) ([]string, error) {
	return f.distinctLocations(ctx)
}

type fakeCategoryRepo struct {
	listCategories func(ctx context.Context) ([]db_models.Category, error)
	listOptions    func(ctx context.Context) ([]response_models.CategoryOption, error)
}

func (f *fakeCategoryRepo) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	return f.listCategories(ctx)
}

func (f *fakeCategoryRepo) ListOptions(ctx context.Context) ([]response_models.CategoryOption, error) {
	return f.listOptions(ctx)
}

func testConfig() *config.Config {
	return &config.Config{QueryTimeout: time.Second}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
