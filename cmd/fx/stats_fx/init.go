package stats_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"givehub/internal/config"
	"givehub/internal/repositories"
	"givehub/internal/services"
)

var Module = fx.Provide(
	provideStatsService, provideSuggestionService)

func provideStatsService(eventRepo repositories.EventRepository, cfg *config.Config, logger *zap.Logger) services.StatsServiceInterface {
	return services.NewStatsService(eventRepo, cfg, logger)
}

func provideSuggestionService(
	eventRepo repositories.EventRepository,
	categoryRepo repositories.CategoryRepository,
	cfg *config.Config,
	logger *zap.Logger,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(eventRepo, categoryRepo, cfg, logger)
}
