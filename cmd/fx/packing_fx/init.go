package packing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
	"wanderlust/pkg/localstore"
)

var Module = fx.Provide(
	providePackingRepo, providePackingService)

func providePackingRepo(store *localstore.Store, db *gorm.DB) repositories.PackingRepository {
	return repositories.NewRoutedPackingRepository(
		repositories.NewLocalPackingRepository(store),
		repositories.NewCloudPackingRepository(db))
}

func providePackingService(packing repositories.PackingRepository, trips repositories.TripRepository) services.PackingServiceInterface {
	return services.NewPackingService(packing, trips)
}
