package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"promana-go/pkg/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort        string        `yaml:"http_port"`
	Env             string        `yaml:"env"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_allowed_origins"`
	MetricsEnabled  bool          `yaml:"metrics_enabled"`
	DB              DBConfig      `yaml:"db"`
}

type DBConfig struct {
	Driver             string        `yaml:"driver"`
	DSN                string        `yaml:"dsn"`
	Host               string        `yaml:"host"`
	Port               string        `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"sslmode"`
	TimeZone           string        `yaml:"timezone"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"conn_max_lifetime"`
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold"`
	AutoMigrate        bool          `yaml:"auto_migrate"`
}

func Default() Config {
	return Config{
		HTTPPort:        "8080",
		Env:             "development",
		ShutdownTimeout: 5 * time.Second,
		CORSOrigins:     []string{"http://localhost:5173"},
		MetricsEnabled:  true,
		DB: DBConfig{
			Driver:             DriverPostgres,
			Host:               "localhost",
			Port:               "5432",
			User:               "postgres",
			Password:           "postgres",
			Name:               "promana",
			SSLMode:            "disable",
			TimeZone:           "UTC",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetime:    30 * time.Minute,
			SlowQueryThreshold: 200 * time.Millisecond,
			AutoMigrate:        true,
		},
	}
}

// Load layers configuration: defaults, then the YAML file named by
// CONFIG_FILE, then environment variables (including a discovered .env).
func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
		log.Info("config: loaded file", "path", path)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported db driver %q", c.DB.Driver)
	}
	if c.DB.Driver == DriverSQLite && c.DB.DSN == "" {
		return fmt.Errorf("config: DB_DSN is required for sqlite")
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("config: HTTP_PORT must not be empty")
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) {
	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.Env = getEnv("APP_ENV", cfg.Env)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.CORSOrigins = getEnvList("CORS_ALLOWED_ORIGINS", cfg.CORSOrigins)
	cfg.MetricsEnabled = getEnvBool("METRICS_ENABLED", cfg.MetricsEnabled)

	db := &cfg.DB
	db.Driver = strings.ToLower(getEnv("DB_DRIVER", db.Driver))
	db.DSN = getEnv("DB_DSN", db.DSN)
	db.Host = getEnv("DB_HOST", db.Host)
	db.Port = getEnv("DB_PORT", db.Port)
	db.User = getEnv("DB_USER", db.User)
	db.Password = getEnv("DB_PASSWORD", db.Password)
	db.Name = getEnv("DB_NAME", db.Name)
	db.SSLMode = getEnv("DB_SSLMODE", db.SSLMode)
	db.TimeZone = getEnv("DB_TIMEZONE", db.TimeZone)
	db.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", db.MaxOpenConns)
	db.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", db.MaxIdleConns)
	db.ConnMaxLifetime = getEnvDuration("DB_CONN_MAX_LIFETIME", db.ConnMaxLifetime)
	db.SlowQueryThreshold = getEnvDuration("DB_SLOW_QUERY_THRESHOLD", db.SlowQueryThreshold)
	db.AutoMigrate = getEnvBool("DB_AUTO_MIGRATE", db.AutoMigrate)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// GetDSN returns DSN as is, or a libpq key/value string built from the parts.
func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
