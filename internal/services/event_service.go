package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"givehub/internal/config"
	"givehub/internal/models/request_models"
	"givehub/internal/models/response_models"
	"givehub/internal/repositories"
	"givehub/pkg/utils"
)

type EventServiceInterface interface {
	ListEvents(filters request_models.EventFilters, ctx context.Context) ([]response_models.EventWithCategory, error)
	ListActiveUpcoming(ctx context.Context) ([]response_models.EventWithCategory, error)
	GetEventByID(rawID string, ctx context.Context) (*response_models.EventWithCategory, error)
}

type EventService struct {
	eventRepo    repositories.EventRepository
	queryTimeout time.Duration
	logger       *zap.Logger
}

func NewEventService(eventRepo repositories.EventRepository, cfg *config.Config, logger *zap.Logger) EventServiceInterface {
	return &EventService{
		eventRepo:    eventRepo,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

func (s *EventService) ListEvents(filters request_models.EventFilters, ctx context.Context) ([]response_models.EventWithCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	events, err := s.eventRepo.ListEvents(ctx, filters)
	if err != nil {
		s.logger.Error("failed to list events", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if events == nil {
		events = []response_models.EventWithCategory{}
	}
	return events, nil
}

func (s *EventService) ListActiveUpcoming(ctx context.Context) ([]response_models.EventWithCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	events, err := s.eventRepo.ListActiveUpcoming(ctx, time.Now())
	if err != nil {
		s.logger.Error("failed to list active events", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if events == nil {
		events = []response_models.EventWithCategory{}
	}
	return events, nil
}

// GetEventByID rejects a non-numeric id before any store access.
func (s *EventService) GetEventByID(rawID string, ctx context.Context) (*response_models.EventWithCategory, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, utils.ErrInvalidEventID
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch event", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	return event, nil
}
