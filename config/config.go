package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	Push     PushConfig     `json:"push"`
	Auth     AuthConfig     `json:"auth"`
	Logging  LoggingConfig  `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"20"`
	MinConnections    int           `json:"min_connections" env:"DB_MIN_CONNECTIONS" default:"5"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type RedisConfig struct {
	URL string `json:"url" env:"REDIS_URL" default:"redis://localhost:6379/0"`
}

type PushConfig struct {
	// HeartbeatInterval is how often an SSE comment is written to keep
	// intermediaries from closing idle connections.
	HeartbeatInterval time.Duration `json:"heartbeat_interval" env:"PUSH_HEARTBEAT_INTERVAL" default:"10s"`
	// SubscriberBuffer is the per-connection event buffer; delivery is
	// at-most-once and events beyond the buffer are dropped.
	SubscriberBuffer int `json:"subscriber_buffer" env:"PUSH_SUBSCRIBER_BUFFER" default:"16"`
}

type AuthConfig struct {
	BackendTokenSecret   string `json:"backend_token_secret" env:"BACKEND_TOKEN_SECRET"`
	BackendTokenIssuer   string `json:"backend_token_issuer" env:"BACKEND_TOKEN_ISSUER" default:"auth-hub"`
	BackendTokenAudience string `json:"backend_token_audience" env:"BACKEND_TOKEN_AUDIENCE" default:"pipeshare"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

// Load builds a Config from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvIntOrDefault("SERVER_PORT", 9300),
			ReadTimeout:  getEnvDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvDurationOrDefault("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Database: DatabaseConfig{
			MaxConnections:    getEnvIntOrDefault("DB_MAX_CONNECTIONS", 20),
			MinConnections:    getEnvIntOrDefault("DB_MIN_CONNECTIONS", 5),
			ConnectionTimeout: getEnvDurationOrDefault("DB_CONNECTION_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		},
		Push: PushConfig{
			HeartbeatInterval: getEnvDurationOrDefault("PUSH_HEARTBEAT_INTERVAL", 10*time.Second),
			SubscriberBuffer:  getEnvIntOrDefault("PUSH_SUBSCRIBER_BUFFER", 16),
		},
		Auth: AuthConfig{
			BackendTokenSecret:   os.Getenv("BACKEND_TOKEN_SECRET"),
			BackendTokenIssuer:   getEnvOrDefault("BACKEND_TOKEN_ISSUER", "auth-hub"),
			BackendTokenAudience: getEnvOrDefault("BACKEND_TOKEN_AUDIENCE", "pipeshare"),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
