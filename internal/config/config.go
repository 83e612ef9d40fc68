package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	API       APIConfig
	Anthropic AnthropicConfig
	Feed      FeedConfig
	DB        DatabaseConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type APIConfig struct {
	RateLimitRPS int
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type FeedConfig struct {
	Workers         int
	BufferSize      int
	RefreshInterval time.Duration
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		API: APIConfig{
			RateLimitRPS: getEnvInt("API_RATE_LIMIT_RPS", 5),
		},
		Anthropic: AnthropicConfig{
			APIKey: getEnv("ANTHROPIC_API_KEY", ""),
			Model:  getEnv("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
		},
		Feed: FeedConfig{
			Workers:         getEnvInt("FEED_WORKERS", 2),
			BufferSize:      getEnvInt("FEED_BUFFER_SIZE", 20),
			RefreshInterval: getEnvDuration("FEED_REFRESH_INTERVAL", 30*time.Second),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/crisis-intel.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.API.RateLimitRPS < 1 {
		return fmt.Errorf("rate limit must be at least 1 req/s")
	}
	if c.Feed.Workers < 1 {
		return fmt.Errorf("feed worker count must be at least 1")
	}
	if c.Feed.RefreshInterval < time.Second {
		return fmt.Errorf("feed refresh interval must be at least 1 second")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
