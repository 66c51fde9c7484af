package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"petsoft/internal/config"
	"petsoft/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(migrate),
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.ClosePostgresql(db, logger)
		},
	})
	return db, nil
}

func migrate(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *zap.Logger) {
	if !cfg.MigrateOnStart {
		logger.Info("skipping migrations on start")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return infra.RunMigrations(ctx, db, logger)
		},
	})
}
