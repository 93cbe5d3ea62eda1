// Command migrate creates or updates the device and profile tables.
package main

import (
	"context"
	"log/slog"
	"os"

	"jelpi/config"
	logs "jelpi/internal/infra/log"
	"jelpi/internal/infra/persistence/model"
	"jelpi/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(migrate),
	)
	if err := app.Err(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(&model.DeviceModel{}, &model.ProfileModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	logger.Info("Schema migrated",
		slog.String("devices", model.DeviceModel{}.TableName()),
		slog.String("profiles", model.ProfileModel{}.TableName()),
	)

	return nil
}
