package app

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"
	"promana-go/internal/config"
	"promana-go/internal/db"
	membersdomain "promana-go/internal/domain/members"
	projectsdomain "promana-go/internal/domain/projects"
	"promana-go/internal/metrics"
	memberrepo "promana-go/internal/repository/postgres/members"
	projectrepo "promana-go/internal/repository/postgres/projects"
	"promana-go/internal/transport/httpserver"
	"promana-go/internal/transport/httpserver/handler"
	"promana-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations")
		if err := db.Migrate(ctx, dbConn, log); err != nil {
			closeDB(dbConn)
			return nil, err
		}
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
		if err := m.InstrumentGorm(dbConn); err != nil {
			closeDB(dbConn)
			return nil, fmt.Errorf("instrument gorm: %w", err)
		}
	}

	log.Info("app: initializing router")
	router, err := NewHandler(cfg, dbConn, m, log)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

// NewHandler builds the services and the router on top of an open database.
func NewHandler(cfg config.Config, dbConn *gorm.DB, m *metrics.Metrics, log logger.Logger) (http.Handler, error) {
	sqlDB, err := dbConn.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql db: %w", err)
	}

	projects := projectsdomain.NewService(projectrepo.NewPostgres(dbConn))
	members := membersdomain.NewService(memberrepo.NewPostgres(dbConn))
	handlers := handler.New(projects, members, sqlDB, log)
	return httpserver.NewRouter(cfg, handlers, m, log), nil
}

func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(dbConn *gorm.DB) {
	if sqlDB, err := dbConn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
