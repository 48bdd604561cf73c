package controllers

import (
	"context"

	"givehub/internal/models/request_models"
	"givehub/internal/models/response_models"
)

type stubEventService struct {
	listEvents         func(filters request_models.EventFilters, ctx context.Context) ([]response_models.EventWithCategory, error)
	listActiveUpcoming func(ctx context.Context) ([]response_models.EventWithCategory, error)
	getEventByID       func(rawID string, ctx context.Context) (*response_models.EventWithCategory, error)
}

func (s *stubEventService) ListEvents(filters request_models.EventFilters, ctx context.Context) ([]response_models.EventWithCategory, error) {
	return s.listEvents(filters, ctx)
}

func (s *stubEventService) ListActiveUpcoming(ctx context.Context) ([]response_models.EventWithCategory, error) {
	return s.listActiveUpcoming(ctx)
}

func (s *stubEventService) GetEventByID(rawID string, ctx context.Context) (*response_models.EventWithCategory, error) {
	return s.getEventByID(rawID, ctx)
}

type stubStatsService struct {
	getSummaryStats func(ctx context.Context) (*response_models.SummaryStats, error)
}

func (s *stubStatsService) GetSummaryStats(ctx context.Context) (*response_models.SummaryStats, error) {
	return s.getSummaryStats(ctx)
}

type stubSuggestionService struct {
	getSearchSuggestions func(ctx context.Context) (*response_models.SearchSuggestions, error)
}

func (s *stubSuggestionService) GetSearchSuggestions(ctx context.Context) (*response_models.SearchSuggestions, error) {
	return s.getSearchSuggestions(ctx)
}

type stubCategoryService struct {
	getAllCategories func(ctx context.Context) ([]response_models.CategoryResponse, error)
}

func (s *stubCategoryService) GetAllCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	return s.getAllCategories(ctx)
}
