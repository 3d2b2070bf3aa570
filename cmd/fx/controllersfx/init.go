package controllersfx

import (
	"go.uber.org/fx"
	"snapquiz/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewPlayController),
	fx.Provide(controllers.NewAnalyticsController))
