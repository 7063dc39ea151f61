package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Ingest IngestConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// IngestConfig holds document upload settings.
type IngestConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the
// POLICYPARSE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POLICYPARSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "policyparse")
	v.SetDefault("db.password", "policyparse_secret")
	v.SetDefault("db.name", "policyparse_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Ingest defaults
	v.SetDefault("ingest.max_file_size_mb", 20)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "POLICYPARSE_SERVER_PORT",
		"server.read_timeout":     "POLICYPARSE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "POLICYPARSE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "POLICYPARSE_SERVER_ENVIRONMENT",
		"db.host":                 "POLICYPARSE_DB_HOST",
		"db.port":                 "POLICYPARSE_DB_PORT",
		"db.user":                 "POLICYPARSE_DB_USER",
		"db.password":             "POLICYPARSE_DB_PASSWORD",
		"db.name":                 "POLICYPARSE_DB_NAME",
		"db.sslmode":              "POLICYPARSE_DB_SSLMODE",
		"db.max_open":             "POLICYPARSE_DB_MAX_OPEN",
		"db.max_idle":             "POLICYPARSE_DB_MAX_IDLE",
		"ingest.max_file_size_mb": "POLICYPARSE_INGEST_MAX_FILE_SIZE_MB",
		"log.level":               "POLICYPARSE_LOG_LEVEL",
		"log.format":              "POLICYPARSE_LOG_FORMAT",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config.Load: binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
