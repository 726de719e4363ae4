package weather_fx

import (
	"go.uber.org/fx"

	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideWeatherService)

func provideWeatherService() services.WeatherServiceInterface {
	return services.NewWeatherService()
}
