package controllers_fx

import (
	"go.uber.org/fx"

	"wanderlust/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewItineraryController,
	controllers.NewWeatherController,
	controllers.NewReviewsController,
	controllers.NewTripController,
	controllers.NewExpenseController,
	controllers.NewPackingController,
	controllers.NewAccountController,
	controllers.NewShareController,
	controllers.NewTemplateController,
)
