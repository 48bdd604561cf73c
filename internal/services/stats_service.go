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

type StatsServiceInterface interface {
	GetSummaryStats(ctx context.Context) (*response_models.SummaryStats, error)
}

type StatsService struct {
	eventRepo    repositories.EventRepository
	queryTimeout time.Duration
	logger       *zap.Logger
}

func NewStatsService(eventRepo repositories.EventRepository, cfg *config.Config, logger *zap.Logger) StatsServiceInterface {
	return &StatsService{
		eventRepo:    eventRepo,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

// GetSummaryStats computes all six figures in one pass over the event set.
func (s *StatsService) GetSummaryStats(ctx context.Context) (*response_models.SummaryStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	stats, err := s.eventRepo.SummaryStats(ctx)
	if err != nil {
		s.logger.Error("failed to compute summary stats", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return stats, nil
}
