package controllers_fx

import (
	"go.uber.org/fx"

	"givehub/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewEventsController,
	controllers.NewCategoriesController,
	controllers.NewHealthController,
)
