package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for the extraction service client.
type Config struct {
	// Host is the base URL of the chat completion API.
	// Example: "https://api.mistral.ai/v1"
	Host string

	// Model is the model identifier to use for extraction.
	// Example: "mistral-small-2501"
	Model string

	// APIKey authenticates against the service. Required; a missing key
	// aborts the run before any segment is processed.
	APIKey string

	// Timeout bounds each service call. A call that exceeds it is
	// reported as a segment failure, never as a hang.
	// Default: 2 minutes.
	Timeout time.Duration

	// Schema is the entity/relation definition embedded into every
	// extraction instruction.
	Schema Schema
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the chat completion API base URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the extraction model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithAPIKey sets the service API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithSchema sets the extraction schema.
func WithSchema(schema Schema) ConfigOption {
	return func(c *Config) {
		c.Schema = schema
	}
}

// DefaultConfig returns a Config with defaults for the hosted Mistral API.
// The API key has no default and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		Host:    "https://api.mistral.ai/v1",
		Model:   "mistral-small-2501",
		Timeout: 2 * time.Minute,
		Schema:  DefaultSchema(),
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithAPIKey(os.Getenv("MISTRAL_API_KEY")),
//	    ai.WithModel("mistral-small-2501"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to the host if missing, which the
// OpenAI-compatible chat endpoints require.
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required (set MISTRAL_API_KEY)")
	}
	if c.Timeout <= 0 {
		return errors.New("ai config: Timeout must be positive")
	}
	if err := c.Schema.Validate(); err != nil {
		return err
	}
	return nil
}
