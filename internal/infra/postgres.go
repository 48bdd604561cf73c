package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"givehub/internal/config"
	"givehub/internal/models/db_models"
)

// InitPostgresql builds the shared connection pool. It is created once at
// process start and torn down by ClosePostgresql on shutdown.
func InitPostgresql(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("error getting database handle", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database ping failed", zap.Error(err))
	}

	if err := db.AutoMigrate(&db_models.Category{}, &db_models.Event{}); err != nil {
		logger.Fatal("auto migration failed", zap.Error(err))
	}

	var eventCount int64
	if err := db.Model(&db_models.Event{}).Count(&eventCount).Error; err != nil {
		logger.Warn("could not count events", zap.Error(err))
	} else {
		logger.Info("connected to postgres", zap.Int64("events", eventCount))
	}

	return db
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("error getting database handle", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing database connection", zap.Error(err))
	} else {
		logger.Info("postgres connection closed")
	}
}
