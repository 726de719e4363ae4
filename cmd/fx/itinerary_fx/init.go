package itinerary_fx

import (
	"os"

	"go.uber.org/fx"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

var Module = fx.Provide(
	provideAIClient, provideItineraryService, provideTemplateService)

func provideAIClient() (utils.AIClientInterface, error) {
	return utils.NewAIClient(
		os.Getenv("AI_PROVIDER"),
		os.Getenv("AI_API_KEY"),
		os.Getenv("AI_MODEL"))
}

func provideItineraryService(aiClient utils.AIClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient)
}

func provideTemplateService() services.TemplateServiceInterface {
	return services.NewTemplateService()
}
