package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"givehub/internal/config"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() *config.Config {
	return config.Load()
}

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}
