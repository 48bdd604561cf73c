package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givehub/internal/models/response_models"
	"givehub/pkg/utils"
)

func TestGetSummaryStatsEmptyStore(t *testing.T) {
	repo := &fakeEventRepo{
		summaryStats: func(ctx context.Context) (*response_models.SummaryStats, error) {
			// COALESCE pins every aggregate to zero when the table is empty
			return &response_models.SummaryStats{}, nil
		},
	}
	svc := NewStatsService(repo, testConfig(), testLogger())

	stats, err := svc.GetSummaryStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalEvents)
	assert.Zero(t, stats.ActiveEvents)
	assert.Zero(t, stats.InactiveEvents)
	assert.Zero(t, stats.TotalGoalAmount)
	assert.Zero(t, stats.TotalRaisedAmount)
	assert.Zero(t, stats.AverageGoalAmount)
}

func TestGetSummaryStatsCountsPartition(t *testing.T) {
	repo := &fakeEventRepo{
		summaryStats: func(ctx context.Context) (*response_models.SummaryStats, error) {
			return &response_models.SummaryStats{
				TotalEvents:       7,
				ActiveEvents:      5,
				InactiveEvents:    2,
				TotalGoalAmount:   70000,
				TotalRaisedAmount: 31500,
				AverageGoalAmount: 10000,
			}, nil
		},
	}
	svc := NewStatsService(repo, testConfig(), testLogger())

	stats, err := svc.GetSummaryStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.TotalEvents, stats.ActiveEvents+stats.InactiveEvents)
}

func TestGetSummaryStatsWrapsStoreFailure(t *testing.T) {
	repo := &fakeEventRepo{
		summaryStats: func(ctx context.Context) (*response_models.SummaryStats, error) {
			return nil, errors.New("aggregation failed")
		},
	}
	svc := NewStatsService(repo, testConfig(), testLogger())

	stats, err := svc.GetSummaryStats(context.Background())
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
