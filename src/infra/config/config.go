// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Supported values for DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug, APP_API_KEY=secret
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout bounds how long in-flight requests get to finish on shutdown.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig selects and configures the relational store.
type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite" (default: postgres)
	Driver string `envconfig:"DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"employees"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// SQLitePath is the database file used by the sqlite driver.
	// ":memory:" keeps everything in process memory.
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"employees.db"`

	// AutoMigrate applies pending schema and seed migrations when the server starts.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// AuthConfig holds the shared secret every request must present.
type AuthConfig struct {
	APIKey string `envconfig:"API_KEY" required:"true"`
}

// CORSConfig controls the cross-origin policy for the browser client.
type CORSConfig struct {
	AllowedOrigin string `envconfig:"CORS_ALLOWED_ORIGIN" default:"*"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type section struct {
	name   string
	target any
}

// process loads each section with the APP prefix so env vars stay flat
// (APP_PORT, not APP_SERVER_PORT).
func process(sections ...section) error {
	for _, s := range sections {
		if err := envconfig.Process("APP", s.target); err != nil {
			return fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	var cfg Config

	err := process(
		section{"server", &cfg.Server},
		section{"database", &cfg.Database},
		section{"log", &cfg.Log},
		section{"auth", &cfg.Auth},
		section{"cors", &cfg.CORS},
	)
	if err != nil {
		return nil, err
	}

	if cfg.Auth.APIKey == "" {
		return nil, errors.New("APP_API_KEY must not be empty")
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadStorage reads only the database and log sections. Commands that never
// serve HTTP (migrations) use it so they do not need an API key.
func LoadStorage() (*Config, error) {
	var cfg Config

	if err := process(
		section{"database", &cfg.Database},
		section{"log", &cfg.Log},
	); err != nil {
		return nil, err
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *DatabaseConfig) validate() error {
	switch c.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}
