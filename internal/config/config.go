// filepath: internal/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"devops-webapp/internal/shared"

	"github.com/BurntSushi/toml"
)

// Defaults used when neither the config file, the environment nor a flag sets a value.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 3000
	DefaultEnvironment     = "development"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = "30s"
	DefaultMetricsPort     = 8000
)

// Config holds the application's configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	App     AppConfig     `toml:"app"`
	Logging LoggingConfig `toml:"logging"`
	Metrics MetricsConfig `toml:"metrics"`

	ShutdownTimeoutDuration time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	PublicDir       string `toml:"public_dir"` // empty serves the embedded assets
	DisableSwagger  bool   `toml:"disable_swagger"`
	ShutdownTimeout string `toml:"shutdown_timeout"` // e.g. "30s"
}

// AppConfig holds values reported by the API.
type AppConfig struct {
	Environment string `toml:"environment"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// MetricsConfig holds the optional Prometheus listener settings.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
	Port    int  `toml:"port"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// ApplyDefaults fills every empty field with its default.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.App.Environment == "" {
		c.App.Environment = DefaultEnvironment
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
}

// ParseAndValidate processes configuration strings into runtime values.
// It expects defaults to be applied already.
func (c *Config) ParseAndValidate() error {
	if err := validatePort(c.Server.Port); err != nil {
		return fmt.Errorf("server.port: %w", err)
	}
	if c.Metrics.Enabled {
		if err := validatePort(c.Metrics.Port); err != nil {
			return fmt.Errorf("metrics.port: %w", err)
		}
		if c.Metrics.Port == c.Server.Port {
			return fmt.Errorf("metrics.port %d: %w: collides with server.port", c.Metrics.Port, shared.ErrInvalidPort)
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, shared.ErrInvalidLogLevel)
	}

	if strings.TrimSpace(c.App.Environment) == "" {
		return fmt.Errorf("app.environment: %w", shared.ErrInvalidEnvironment)
	}

	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return fmt.Errorf("invalid shutdown_timeout %q", c.Server.ShutdownTimeout)
	}
	c.ShutdownTimeoutDuration = d

	return nil
}

// Address returns the host:port pair the HTTP server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// MetricsAddress returns the host:port pair of the metrics listener.
func (c *Config) MetricsAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Metrics.Port))
}

func validatePort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("%w: %d", shared.ErrInvalidPort, p)
	}
	return nil
}
