package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig returned when the config file cannot be decoded
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig returned when a value fails validation
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config service configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	WhatsApp WhatsAppConfig `toml:"whatsapp"`
}

// ServerConfig HTTP server settings, timeouts in seconds
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL connection settings
type DatabaseConfig struct {
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

// RedisConfig snapshot cache settings
type RedisConfig struct {
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	SnapshotKey string `toml:"snapshot_key"`
	Timeout     int    `toml:"timeout"` // seconds
}

// LogsConfig logger settings, empty file = stdout only
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig admin panel gate
type AdminConfig struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"` // bcrypt
}

// WhatsAppConfig client message links
type WhatsAppConfig struct {
	CountryCode string `toml:"country_code"`
	ShopName    string `toml:"shop_name"`
}

// DSN returns the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load reads the TOML file at path, applies defaults and environment overrides, and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used for values missing from the file
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "carlach",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			SnapshotKey: "carlach_appointments",
			Timeout:     2,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "carlach-detailing",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		WhatsApp: WhatsAppConfig{
			CountryCode: "55",
			ShopName:    "Carlach Detailing",
		},
	}
}

// applyEnv overrides secrets from the environment
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		c.Admin.PasswordHash = v
	}
}

// Validate checks the values the service cannot start without
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Redis.SnapshotKey == "" {
		return fmt.Errorf("%w: redis.snapshot_key is required", ErrInvalidConfig)
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("%w: admin.password_hash is required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
