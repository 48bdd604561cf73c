package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"givehub/cmd/fx/categories_fx"
	"givehub/cmd/fx/config_fx"
	"givehub/cmd/fx/controllers_fx"
	"givehub/cmd/fx/db_fx"
	"givehub/cmd/fx/events_fx"
	"givehub/cmd/fx/stats_fx"
	"givehub/internal/api/controllers"
	"givehub/internal/config"
	"givehub/internal/infra"
	"givehub/pkg/middleware"
	"givehub/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		events_fx.Module,
		categories_fx.Module,
		stats_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
}

func ProvideRouter(
	eventsController *controllers.EventsController,
	categoriesController *controllers.CategoriesController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, eventsController, categoriesController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	eventsController *controllers.EventsController,
	categoriesController *controllers.CategoriesController,
	healthController *controllers.HealthController) {

	r.GET("/health", healthController.Check)
	r.NoRoute(notFoundHandler)

	api := r.Group("/api")
	api.GET("/categories", categoriesController.ListCategories)
	api.GET("/events", eventsController.ListEvents)
	api.GET("/events/active", eventsController.ListActiveEvents)
	api.GET("/events/search/suggestions", eventsController.GetSearchSuggestions)
	api.GET("/events/stats/summary", eventsController.GetSummaryStats)
	api.GET("/events/:id", eventsController.GetEventByID)
}

func notFoundHandler(c *gin.Context) {
	utils.RespondError(c, http.StatusNotFound, "Endpoint not found",
		"The requested endpoint "+c.Request.URL.Path+" was not found")
}
