// Package config holds the settings of the ipcchan command, loaded from the
// environment and overridden by command line flags.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/opd-ai/ipcchannel/limits"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is prepended to every environment variable, e.g. IPCCHAN_TIMEOUT.
const EnvPrefix = "IPCCHAN"

// Role selects what the command does with the channel.
type Role string

const (
	// RoleServer creates the channel and prints every message it receives.
	RoleServer Role = "server"
	// RoleClient connects to an existing channel and sends the arguments, or
	// each line of stdin when there are none.
	RoleClient Role = "client"
	// RoleUnlink removes a leftover socket file of the channel, if any.
	RoleUnlink Role = "unlink"
)

// Config holds all ipcchan configuration.
type Config struct {
	Role           Role          `envconfig:"ROLE" default:"server"`
	Name           string        `envconfig:"NAME"`
	NoPrefix       bool          `envconfig:"NO_PREFIX" default:"false"`
	MaxMessageSize uint64        `envconfig:"MAX_MESSAGE_SIZE" default:"4096"`
	MaxMessages    uint64        `envconfig:"MAX_MESSAGES" default:"10"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"0s"`
	Count          int           `envconfig:"COUNT" default:"0"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from IPCCHAN_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Role:           RoleServer,
		MaxMessageSize: limits.MaxMessageSize,
		MaxMessages:    10,
		LogLevel:       "info",
	}
}

// Validate checks the configuration for values the channel would reject.
// An empty name is allowed for servers, which generate one.
func (c *Config) Validate() error {
	switch c.Role {
	case RoleServer:
	case RoleClient, RoleUnlink:
		if c.Name == "" {
			return fmt.Errorf("%s mode requires a channel name", c.Role)
		}
	default:
		return fmt.Errorf("unknown role %q (want server, client or unlink)", c.Role)
	}

	if c.Name != "" && !c.NoPrefix {
		if err := limits.ValidateName(c.Name); err != nil {
			return fmt.Errorf("name: %w", err)
		}
	}

	if err := limits.ValidateMaxMessageSize(c.MaxMessageSize); err != nil {
		return fmt.Errorf("max message size: %w", err)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}

	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
