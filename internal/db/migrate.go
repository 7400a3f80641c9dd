package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
	"promana-go/pkg/logger"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies the embedded migrations for the connection's dialect.
func Migrate(ctx context.Context, gormDB *gorm.DB, log logger.Logger) error {
	var (
		dialect goose.Dialect
		dir     string
	)
	switch name := gormDB.Dialector.Name(); name {
	case "postgres":
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	case "sqlite":
		dialect, dir = goose.DialectSQLite3, "migrations/sqlite"
	default:
		return fmt.Errorf("migrate: unsupported dialect %q", name)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("migrate: db handle: %w", err)
	}

	migrations, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, migrations)
	if err != nil {
		return fmt.Errorf("migrate: new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate: up: %w", err)
	}
	for _, result := range results {
		log.Info("db: applied migration", "version", result.Source.Version, "path", result.Source.Path, "duration", result.Duration)
	}
	return nil
}
