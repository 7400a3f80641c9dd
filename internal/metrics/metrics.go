// Package metrics owns the prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

const startedAtKey = "promana:started_at"

type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	DBQueryDuration     *prometheus.HistogramVec
}

// New registers the service collectors together with the go and process
// collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"operation", "table"},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
		m.DBQueryDuration,
	)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.HTTPRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
	m.HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
}

// InstrumentGorm times every statement gorm runs through its callback chains.
func (m *Metrics) InstrumentGorm(db *gorm.DB) error {
	cb := db.Callback()
	chains := []struct {
		operation string
		register  func(name string, before bool, fn func(*gorm.DB)) error
	}{
		{"create", func(name string, before bool, fn func(*gorm.DB)) error {
			if before {
				return cb.Create().Before("gorm:create").Register(name, fn)
			}
			return cb.Create().After("gorm:create").Register(name, fn)
		}},
		{"query", func(name string, before bool, fn func(*gorm.DB)) error {
			if before {
				return cb.Query().Before("gorm:query").Register(name, fn)
			}
			return cb.Query().After("gorm:query").Register(name, fn)
		}},
		{"update", func(name string, before bool, fn func(*gorm.DB)) error {
			if before {
				return cb.Update().Before("gorm:update").Register(name, fn)
			}
			return cb.Update().After("gorm:update").Register(name, fn)
		}},
		{"delete", func(name string, before bool, fn func(*gorm.DB)) error {
			if before {
				return cb.Delete().Before("gorm:delete").Register(name, fn)
			}
			return cb.Delete().After("gorm:delete").Register(name, fn)
		}},
		{"row", func(name string, before bool, fn func(*gorm.DB)) error {
			if before {
				return cb.Row().Before("gorm:row").Register(name, fn)
			}
			return cb.Row().After("gorm:row").Register(name, fn)
		}},
		{"raw", func(name string, before bool, fn func(*gorm.DB)) error {
			if before {
				return cb.Raw().Before("gorm:raw").Register(name, fn)
			}
			return cb.Raw().After("gorm:raw").Register(name, fn)
		}},
	}

	for _, chain := range chains {
		if err := chain.register("promana:metrics_before_"+chain.operation, true, startTimer); err != nil {
			return err
		}
		if err := chain.register("promana:metrics_after_"+chain.operation, false, m.observeQuery(chain.operation)); err != nil {
			return err
		}
	}
	return nil
}

func startTimer(tx *gorm.DB) {
	tx.InstanceSet(startedAtKey, time.Now())
}

func (m *Metrics) observeQuery(operation string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		value, ok := tx.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		startedAt, ok := value.(time.Time)
		if !ok {
			return
		}
		table := tx.Statement.Table
		if table == "" {
			table = "unknown"
		}
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(time.Since(startedAt).Seconds())
	}
}
