// Package config loads the service configuration from a TOML file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig is returned when the config file cannot be read or parsed
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig is returned when required fields are missing
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the root configuration of the service.
type Config struct {
	Server         Server         `toml:"server"`
	Database       Database       `toml:"database"`
	Logs           Logs           `toml:"logs"`
	Metrics        Metrics        `toml:"metrics"`
	Webhooks       Webhooks       `toml:"webhooks"`
	CalendarBridge CalendarBridge `toml:"calendar_bridge"`
}

// Server holds HTTP server settings. Timeouts are in seconds.
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database holds Postgres connection settings.
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Logs holds logger settings.
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics holds Prometheus settings.
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Webhooks holds settings for the n8n conversational-bot surface.
type Webhooks struct {
	// Token is the shared secret the bot sends in X-Webhook-Token
	Token string `toml:"token"`
}

// CalendarBridge holds settings for the external calendar integration.
type CalendarBridge struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if cfg.Server.HTTPPort == 0 {
		return nil, fmt.Errorf("%w: server.http_port is required", ErrInvalidConfig)
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	// The webhook routes are always registered, so an empty shared secret
	// would leave the bot surface open to anyone.
	if cfg.Webhooks.Token == "" {
		return nil, fmt.Errorf("%w: webhooks.token is required", ErrInvalidConfig)
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	return &cfg, nil
}
