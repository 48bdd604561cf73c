package events_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"givehub/internal/config"
	"givehub/internal/repositories"
	"givehub/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository, cfg *config.Config, logger *zap.Logger) services.EventServiceInterface {
	return services.NewEventService(eventRepo, cfg, logger)
}
