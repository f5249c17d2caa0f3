// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Session       SessionConfig      `mapstructure:"session"`
	Catalog       CatalogConfig      `mapstructure:"catalog"`
	Submission    SubmissionConfig   `mapstructure:"submission"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // seconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // seconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // seconds
	EnableCORS      bool     `mapstructure:"enable_cors"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig controls where audit sessions live and for how long.
type SessionConfig struct {
	Store string `mapstructure:"store"` // "memory" or "redis"
	TTL   int    `mapstructure:"ttl"`   // minutes
}

// TTLDuration returns the session expiry as a duration.
func (s SessionConfig) TTLDuration() time.Duration {
	return time.Duration(s.TTL) * time.Minute
}

// CatalogConfig points at an optional external question catalog file.
// When Path is empty the built-in catalog is used.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// SubmissionConfig configures the fire-and-forget lead collection endpoint.
type SubmissionConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Timeout  int    `mapstructure:"timeout"` // seconds
}

// TimeoutDuration returns the forwarder client timeout.
func (s SubmissionConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// NotificationConfig configures best-effort lead notifications.
type NotificationConfig struct {
	Email EmailConfig `mapstructure:"email"`
	SNS   SNSConfig   `mapstructure:"sns"`
}

type EmailConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Region  string `mapstructure:"region"`
	Sender  string `mapstructure:"sender"`
	ReplyTo string `mapstructure:"reply_to"`
}

type SNSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Region   string `mapstructure:"region"`
	TopicARN string `mapstructure:"topic_arn"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}
