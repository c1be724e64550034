// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
)

// Token store backends.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	API     APIConfig
	Payment PaymentConfig
	Store   StoreConfig
	Display DisplayConfig
	Logging logger.Config
	App     AppConfig
}

// ServerConfig holds settings for the local view server.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// APIConfig points at the remote booking API.
type APIConfig struct {
	// BaseURL is the single configured origin; endpoint paths are resolved against it
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://127.0.0.1:8000/api/"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// PaymentConfig holds payment intent settings.
type PaymentConfig struct {
	Currency string `env:"PAYMENT_CURRENCY" envDefault:"usd"`
}

// StoreConfig selects where the credential token is persisted.
type StoreConfig struct {
	Kind           string `env:"TOKEN_STORE" envDefault:"file"`
	Path           string `env:"TOKEN_STORE_PATH" envDefault:".flightbooking/local_storage.json"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"flightbooking:"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Timezone string `env:"DISPLAY_TIMEZONE" envDefault:"UTC"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// A .env file is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}

	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute http(s) URL, got %q", cfg.API.BaseURL)
	}

	if strings.TrimSpace(cfg.Payment.Currency) == "" {
		return fmt.Errorf("PAYMENT_CURRENCY must not be empty")
	}

	switch cfg.Store.Kind {
	case StoreFile:
		if cfg.Store.Path == "" {
			return fmt.Errorf("TOKEN_STORE_PATH is required for the file store")
		}
	case StoreMemory:
	case StoreRedis:
		if cfg.Store.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis store")
		}
	default:
		return fmt.Errorf("TOKEN_STORE must be one of: file, memory, redis; got %q", cfg.Store.Kind)
	}

	if _, err := timeutil.GetLocation(cfg.Display.Timezone); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE: %w", err)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
