// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config service configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig logging settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig scheduling parameters of the wash calendar.
type BookingConfig struct {
	// Timezone is the IANA identifier of the business's civil timezone.
	// Instants are stored in UTC and converted through tzdata rules.
	Timezone string `toml:"timezone"`
	// SlotStepMinutes is the granularity of generated slots.
	SlotStepMinutes int `toml:"slot_step_minutes"`
	// MinLeadTimeMinutes is how far in the future a booking must start.
	MinLeadTimeMinutes int `toml:"min_lead_time_minutes"`
	// StoreTimeoutSeconds bounds every storage unit of work.
	StoreTimeoutSeconds int `toml:"store_timeout_seconds"`
}

// Load parses the TOML config at path and applies defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = "America/Argentina/Buenos_Aires"
	}
	if cfg.Booking.SlotStepMinutes <= 0 {
		cfg.Booking.SlotStepMinutes = 30
	}
	if cfg.Booking.MinLeadTimeMinutes <= 0 {
		cfg.Booking.MinLeadTimeMinutes = 10
	}
	if cfg.Booking.StoreTimeoutSeconds <= 0 {
		cfg.Booking.StoreTimeoutSeconds = 5
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return &cfg, nil
}
