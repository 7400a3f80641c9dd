package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"promana-go/internal/config"
	"promana-go/pkg/logger"
)

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
	defaultSlowThreshold   = 200 * time.Millisecond
)

// Open connects to the configured driver and verifies the connection.
func Open(cfg config.DBConfig, log logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		log.Info("db: opening sqlite", "dsn", cfg.DSN)
		dialector = sqlite.Open(cfg.DSN)
	case config.DriverPostgres, "":
		if cfg.DSN != "" {
			log.Info("db: connecting using DSN")
		} else {
			log.Info("db: connecting to postgres", "host", cfg.Host, "port", cfg.Port, "dbname", cfg.Name, "sslmode", cfg.SSLMode)
		}
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("open db: unsupported driver %q", cfg.Driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log, cfg.SlowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = defaultMaxIdleConns
	}
	connMaxLifetime := cfg.ConnMaxLifetime
	if connMaxLifetime == 0 {
		connMaxLifetime = defaultConnMaxLifetime
	}
	// SQLite serialises writers and an in-memory database lives only as long
	// as its connection.
	if cfg.Driver == config.DriverSQLite {
		maxOpen = 1
		maxIdle = 1
		connMaxLifetime = 0
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		if err := gormDB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	log.Info("db: connected", "driver", cfg.Driver)
	return gormDB, nil
}

type gormWriter struct {
	log logger.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn(fmt.Sprintf(format, args...))
}

func newGormLogger(log logger.Logger, slowThreshold time.Duration) gormlogger.Interface {
	if slowThreshold == 0 {
		slowThreshold = defaultSlowThreshold
	}
	return gormlogger.New(gormWriter{log: log.With("component", "gorm")}, gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
