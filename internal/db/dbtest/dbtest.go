// Package dbtest opens throwaway migrated SQLite databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promana-go/internal/config"
	"promana-go/internal/db"
	"promana-go/pkg/logger"
)

// NewSQLite returns a migrated in-memory database private to the test.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_" + uuid.NewString()
	cfg := config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name),
	}

	log := logger.NewNop()
	gormDB, err := db.Open(cfg, log)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := db.Migrate(context.Background(), gormDB, log); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return gormDB
}
