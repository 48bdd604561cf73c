package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"givehub/internal/models/request_models"
	"givehub/internal/models/response_models"
)

type EventRepository interface {
	ListEvents(ctx context.Context, filters request_models.EventFilters) ([]response_models.EventWithCategory, error)
	ListActiveUpcoming(ctx context.Context, now time.Time) ([]response_models.EventWithCategory, error)
	GetEventByID(ctx context.Context, id int64) (*response_models.EventWithCategory, error)
	SummaryStats(ctx context.Context) (*response_models.SummaryStats, error)
	DistinctActiveLocations(ctx context.Context) ([]string, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) ListEvents(ctx context.Context, filters request_models.EventFilters) ([]response_models.EventWithCategory, error) {
	query, args := BuildListingQuery(filters)

	var rows []response_models.EventWithCategory
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *eventRepository) ListActiveUpcoming(ctx context.Context, now time.Time) ([]response_models.EventWithCategory, error) {
	query := listingBaseQuery +
		" AND e.is_active = TRUE AND e.date_time >= ?" +
		listingOrderClause

	var rows []response_models.EventWithCategory
	err := r.db.WithContext(ctx).Raw(query, now).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetEventByID follows the read-helper convention: default value plus nil
// error when no row matches.
func (r *eventRepository) GetEventByID(ctx context.Context, id int64) (*response_models.EventWithCategory, error) {
	query := listingBaseQuery + " AND e.id = ?"

	var rows []response_models.EventWithCategory
	err := r.db.WithContext(ctx).Raw(query, id).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

const summaryStatsQuery = `
SELECT
    COUNT(*) AS total_events,
    COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active_events,
    COALESCE(SUM(CASE WHEN is_active THEN 0 ELSE 1 END), 0) AS inactive_events,
    COALESCE(SUM(goal_amount), 0) AS total_goal_amount,
    COALESCE(SUM(current_amount), 0) AS total_raised_amount,
    COALESCE(AVG(goal_amount), 0) AS average_goal_amount
FROM events`

func (r *eventRepository) SummaryStats(ctx context.Context) (*response_models.SummaryStats, error) {
	var stats response_models.SummaryStats
	err := r.db.WithContext(ctx).Raw(summaryStatsQuery).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *eventRepository) DistinctActiveLocations(ctx context.Context) ([]string, error) {
	var locations []string
	err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT location FROM events WHERE is_active = TRUE ORDER BY location").
		Scan(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
