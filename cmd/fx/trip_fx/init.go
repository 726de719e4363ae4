package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
	"wanderlust/pkg/localstore"
)

var Module = fx.Provide(
	provideLocalTripRepo, provideTripRepo, provideTripService, provideExportService)

func provideLocalTripRepo(store *localstore.Store) repositories.LocalTripRepository {
	return repositories.NewLocalTripRepository(store)
}

func provideTripRepo(local repositories.LocalTripRepository, db *gorm.DB) repositories.TripRepository {
	return repositories.NewRoutedTripRepository(local, repositories.NewCloudTripRepository(db))
}

func provideTripService(
	trips repositories.TripRepository,
	local repositories.LocalTripRepository,
	db *gorm.DB,
	store *localstore.Store,
) services.TripServiceInterface {
	return services.NewTripService(trips, local, repositories.NewCloudTripRepository(db), store)
}

func provideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}
