package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"givehub/internal/config"
	"givehub/internal/models/response_models"
	"givehub/internal/repositories"
	"givehub/pkg/utils"
)

type SuggestionServiceInterface interface {
	GetSearchSuggestions(ctx context.Context) (*response_models.SearchSuggestions, error)
}

type SuggestionService struct {
	eventRepo    repositories.EventRepository
	categoryRepo repositories.CategoryRepository
	queryTimeout time.Duration
	logger       *zap.Logger
}

func NewSuggestionService(
	eventRepo repositories.EventRepository,
	categoryRepo repositories.CategoryRepository,
	cfg *config.Config,
	logger *zap.Logger,
) SuggestionServiceInterface {
	return &SuggestionService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

// GetSearchSuggestions runs the location and category queries concurrently
// and joins on both. The first failure wins and cancels the sibling; no
// partial result is ever returned.
func (s *SuggestionService) GetSearchSuggestions(ctx context.Context) (*response_models.SearchSuggestions, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var locations []string
	var categories []response_models.CategoryOption

	g.Go(func() error {
		var err error
		locations, err = s.eventRepo.DistinctActiveLocations(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListOptions(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to collect search suggestions", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if locations == nil {
		locations = []string{}
	}
	if categories == nil {
		categories = []response_models.CategoryOption{}
	}
	return &response_models.SearchSuggestions{
		Locations:  locations,
		Categories: categories,
	}, nil
}
