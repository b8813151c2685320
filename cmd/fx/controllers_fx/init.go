package controllers_fx

import (
	"go.uber.org/fx"

	"itinera/internal/api"
	"itinera/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(api.NewRouter))
