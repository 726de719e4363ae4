package share_fx

import (
	"go.uber.org/fx"

	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideShareService)

func provideShareService() services.ShareServiceInterface {
	return services.NewShareService()
}
