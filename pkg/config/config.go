package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goran-ethernal/SolanaRelay/internal/common"
	"github.com/goran-ethernal/SolanaRelay/internal/logger"
)

const (
	// DefaultMoralisBaseURL is the Moralis Solana gateway.
	DefaultMoralisBaseURL = "https://solana-gateway.moralis.io"

	// DefaultUserAgent is sent on every upstream request unless overridden.
	DefaultUserAgent = "SolanaRelay/1.0"

	// DefaultListenAddress is the canonical listen address of the relay.
	DefaultListenAddress = ":8080"
)

// Config represents the complete configuration for the relay.
type Config struct {
	// API contains the inbound HTTP server configuration
	API APIConfig `yaml:"api" json:"api" toml:"api"`

	// Moralis contains the upstream gateway configuration
	Moralis MoralisConfig `yaml:"moralis" json:"moralis" toml:"moralis"`

	// Logging contains logging configuration
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty"`

	// Metrics contains Prometheus metrics configuration
	Metrics *MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty" toml:"metrics,omitempty"`
}

// APIConfig configures the inbound HTTP server.
type APIConfig struct {
	// ListenAddress is the address to bind the relay to, "host:port" or ":port"
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout common.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout common.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next keep-alive request
	IdleTimeout common.Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`

	// CORS contains cross-origin settings
	CORS CORSConfig `yaml:"cors" json:"cors" toml:"cors"`
}

// CORSConfig configures Cross-Origin Resource Sharing.
type CORSConfig struct {
	// Enabled turns the CORS middleware on
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// AllowedOrigins lists origins allowed to call the relay, "*" allows any
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" toml:"allowed_origins"`
}

// ApplyDefaults sets default values for optional API configuration fields.
func (a *APIConfig) ApplyDefaults() {
	if a.ListenAddress == "" {
		a.ListenAddress = DefaultListenAddress
	}
	if a.ReadTimeout.Duration == 0 {
		a.ReadTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.WriteTimeout.Duration == 0 {
		// must exceed the upstream request timeout
		a.WriteTimeout = common.NewDuration(60 * time.Second) //nolint:mnd
	}
	if a.IdleTimeout.Duration == 0 {
		a.IdleTimeout = common.NewDuration(120 * time.Second) //nolint:mnd
	}
	if a.CORS.Enabled && len(a.CORS.AllowedOrigins) == 0 {
		a.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks if the API configuration is valid.
func (a *APIConfig) Validate() error {
	if a.ListenAddress == "" {
		return fmt.Errorf("listen_address is required")
	}

	for i, origin := range a.CORS.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors.allowed_origins[%d]: origin must not be empty", i)
		}
	}

	return nil
}

// MoralisConfig configures the upstream Moralis Solana gateway.
type MoralisConfig struct {
	// APIKey is sent as X-API-Key. Usually provided through MORALIS_API_KEY.
	APIKey string `yaml:"api_key" json:"api_key" toml:"api_key"`

	// BaseURL is the gateway base URL without a trailing slash
	BaseURL string `yaml:"base_url" json:"base_url" toml:"base_url"`

	// UserAgent is sent as User-Agent on every upstream request
	UserAgent string `yaml:"user_agent" json:"user_agent" toml:"user_agent"`

	// RequestTimeout bounds a single upstream request
	RequestTimeout common.Duration `yaml:"request_timeout" json:"request_timeout" toml:"request_timeout"`
}

// ApplyDefaults sets default values for optional upstream configuration fields.
func (m *MoralisConfig) ApplyDefaults() {
	if m.BaseURL == "" {
		m.BaseURL = DefaultMoralisBaseURL
	}
	m.BaseURL = strings.TrimRight(m.BaseURL, "/")

	if m.UserAgent == "" {
		m.UserAgent = DefaultUserAgent
	}
	if m.RequestTimeout.Duration == 0 {
		m.RequestTimeout = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	// APIKey has no default
}

// Validate checks if the upstream configuration is valid.
func (m *MoralisConfig) Validate() error {
	if m.APIKey == "" {
		return fmt.Errorf("api_key is required (set MORALIS_API_KEY)")
	}

	u, err := url.Parse(m.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url: host is required")
	}

	if m.RequestTimeout.Duration < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}

	return nil
}

// LoggingConfig configures logging behavior with per-component log levels.
type LoggingConfig struct {
	// DefaultLevel is the default log level for all components
	// Options: "debug", "info", "warn", "error"
	DefaultLevel string `yaml:"default_level" json:"default_level" toml:"default_level"`

	// Development enables development mode (stack traces, console encoder)
	Development bool `yaml:"development" json:"development" toml:"development"`

	// ComponentLevels sets log levels for specific components
	// Available components:
	//   - api: Inbound HTTP server and middleware
	//   - relay: Request validation and response mapping
	//   - moralis-client: Upstream HTTP client
	//   - metrics: Metrics server
	ComponentLevels map[string]string `yaml:"component_levels,omitempty" json:"component_levels,omitempty" toml:"component_levels,omitempty"` //nolint:lll
}

// ApplyDefaults sets default values for optional logging configuration fields.
func (l *LoggingConfig) ApplyDefaults() {
	if l.DefaultLevel == "" {
		l.DefaultLevel = "info"
	}
	// Development defaults to false (zero value)
	normalized := make(map[string]string, len(l.ComponentLevels))
	for component, level := range l.ComponentLevels {
		normalized[common.ToLowerWithTrim(component)] = level
	}
	l.ComponentLevels = normalized
}

// Validate checks if the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	if l.DefaultLevel != "" {
		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(l.DefaultLevel)]; !valid {
			return fmt.Errorf("logging.default_level: must be one of: debug, info, warn, error")
		}
	}

	for component, level := range l.ComponentLevels {
		if _, validComponent := common.AllComponents[common.ToLowerWithTrim(component)]; !validComponent {
			return fmt.Errorf("logging.component_levels: unknown component '%s'", component)
		}

		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(level)]; !valid {
			return fmt.Errorf("logging.component_levels[%s]: must be one of: debug, info, warn, error", component)
		}
	}

	return nil
}

// GetComponentLevel returns the log level for a specific component.
// Falls back to DefaultLevel if no component-specific level is set.
func (l *LoggingConfig) GetComponentLevel(component string) string {
	if l == nil {
		return "info"
	}
	if level, ok := l.ComponentLevels[common.ToLowerWithTrim(component)]; ok {
		return common.ToLowerWithTrim(level)
	}
	return l.GetDefaultLevel()
}

// GetDefaultLevel returns the default log level.
func (l *LoggingConfig) GetDefaultLevel() string {
	if l == nil || l.DefaultLevel == "" {
		return "info"
	}
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// IsDevelopment returns whether development mode is enabled.
func (l *LoggingConfig) IsDevelopment() bool {
	return l != nil && l.Development
}

// MetricsConfig configures Prometheus metrics exposition.
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP endpoint are active
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the metrics HTTP server to
	// Format: "host:port" or ":port"
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// Path is the HTTP path where metrics are exposed
	Path string `yaml:"path" json:"path" toml:"path"`
}

// ApplyDefaults sets default values for optional metrics configuration fields.
func (m *MetricsConfig) ApplyDefaults() {
	if m.ListenAddress == "" {
		m.ListenAddress = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
	// Enabled defaults to false (zero value)
}

// Validate checks if the metrics configuration is valid.
func (m *MetricsConfig) Validate() error {
	if m.Enabled {
		if m.ListenAddress == "" {
			return fmt.Errorf("listen_address is required when metrics are enabled")
		}
		if m.Path == "" {
			return fmt.Errorf("path is required when metrics are enabled")
		}
		if m.Path[0] != '/' {
			return fmt.Errorf("path must start with '/'")
		}
	}
	return nil
}

// ApplyDefaults sets default values for optional configuration fields.
func (c *Config) ApplyDefaults() {
	c.API.ApplyDefaults()
	c.Moralis.ApplyDefaults()

	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	c.Logging.ApplyDefaults()

	if c.Metrics != nil {
		c.Metrics.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := c.Moralis.Validate(); err != nil {
		return fmt.Errorf("moralis: %w", err)
	}

	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}
