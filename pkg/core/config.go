package core

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config contains the client settings that are not credentials.
// Credentials are kept separately so that a Config can be logged or shared freely.
type Config struct {
	Exchange string `json:"exchange" yaml:"exchange" validate:"required"`
	BaseURL  string `json:"base_url" yaml:"base_url" validate:"required,url"`

	// Timeout is the maximum duration for a single HTTP round trip.
	// It is enforced by the transport; the pipeline itself imposes none.
	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"min=1ms"`

	LogLevel string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config initialized with defaults for the specified exchange.
// Default values: OKX production host, 10s timeout, info logging.
func DefaultConfig(exchange string) *Config {
	return &Config{
		Exchange: exchange,
		BaseURL:  "https://www.okx.com",
		Timeout:  10 * time.Second,
		LogLevel: "info",
	}
}

var validate = validator.New()

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Level returns the zerolog level named by LogLevel, falling back to info.
func (c *Config) Level() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// WithBaseURL sets the API host and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
