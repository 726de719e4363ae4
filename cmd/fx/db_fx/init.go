package db_fx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderlust/internal/infra"
	"wanderlust/pkg/localstore"
)

var Module = fx.Provide(
	provideDB, provideLocalStore)

func provideDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}

func provideLocalStore() *localstore.Store {
	return localstore.New(os.Getenv("LOCAL_STORE_PATH"))
}
