package reviews_fx

import (
	"go.uber.org/fx"

	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideReviewService)

func provideReviewService() services.ReviewServiceInterface {
	return services.NewReviewService()
}
