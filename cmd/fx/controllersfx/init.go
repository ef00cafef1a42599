package controllersfx

import (
	"go.uber.org/fx"

	"planmyitinerary/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewItineraryController,
	controllers.NewAccountController,
)
