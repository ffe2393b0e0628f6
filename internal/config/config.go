package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Seed     SeedConfig
	S3       S3Config
	Database DatabaseConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// SeedConfig selects the sources the product store is filled from at startup.
type SeedConfig struct {
	Defaults bool
	File     string // JSON-lines, gzipped when it ends in .gz
}

// S3Config holds AWS S3 configuration for seed files.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "seeds/")
}

// DatabaseConfig holds the PostgreSQL seed source configuration.
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	Table           string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

var defaults = map[string]any{
	"ENV_FILE":             ".env",
	"SERVER_HOST":          "0.0.0.0",
	"PORT":                 3000,
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"API_KEY":              "secret-api-key",
	"SEED_DEFAULTS":        true,
	"SEED_FILE":            "",
	"SEED_S3_ENABLED":      false,
	"SEED_S3_BUCKET":       "",
	"SEED_S3_REGION":       "us-east-1",
	"SEED_S3_PREFIX":       "seeds/",
	"SEED_DB_ENABLED":      false,
	"SEED_DB_TABLE":        "products",
	"DB_HOST":              "localhost",
	"DB_PORT":              5432,
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "",
	"DB_NAME":              "products",
	"DB_MAX_CONNECTIONS":   5,
	"DB_MIN_CONNECTIONS":   1,
	"DB_MAX_CONN_LIFETIME": 300,
}

// Load loads configuration from environment variables. Values missing from
// the environment are read from the dotenv file named by ENV_FILE, if it
// exists, and then fall back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	envFile := v.GetString("ENV_FILE")
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Auth: AuthConfig{
			APIKey: v.GetString("API_KEY"),
		},
		Seed: SeedConfig{
			Defaults: v.GetBool("SEED_DEFAULTS"),
			File:     v.GetString("SEED_FILE"),
		},
		S3: S3Config{
			Enabled: v.GetBool("SEED_S3_ENABLED"),
			Bucket:  v.GetString("SEED_S3_BUCKET"),
			Region:  v.GetString("SEED_S3_REGION"),
			Prefix:  v.GetString("SEED_S3_PREFIX"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("SEED_DB_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Database:        v.GetString("DB_NAME"),
			Table:           v.GetString("SEED_DB_TABLE"),
			MaxConnections:  v.GetInt("DB_MAX_CONNECTIONS"),
			MinConnections:  v.GetInt("DB_MIN_CONNECTIONS"),
			MaxConnLifetime: v.GetInt("DB_MAX_CONN_LIFETIME"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.S3.Enabled {
		if c.Seed.File == "" {
			return fmt.Errorf("seed file is required when S3 is enabled")
		}
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	if c.Database.Enabled {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Validate validates the database settings. It is only consulted when the
// database seed source is enabled.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
