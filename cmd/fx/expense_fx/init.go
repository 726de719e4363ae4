package expense_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
	"wanderlust/pkg/localstore"
)

var Module = fx.Provide(
	provideExpenseRepo, provideExpenseService)

func provideExpenseRepo(store *localstore.Store, db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewRoutedExpenseRepository(
		repositories.NewLocalExpenseRepository(store),
		repositories.NewCloudExpenseRepository(db))
}

func provideExpenseService(expenses repositories.ExpenseRepository, trips repositories.TripRepository) services.ExpenseServiceInterface {
	return services.NewExpenseService(expenses, trips)
}
