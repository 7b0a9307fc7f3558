// ABOUTME: Process configuration loaded from environment and optional TOML file
// ABOUTME: Immutable after Load; validates credentials and transport selection
package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Transport identifies how the MCP server talks to its client.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
	TransportSSE   Transport = "sse"
)

// DefaultBaseURL is the production Intervals.icu API root.
const DefaultBaseURL = "https://intervals.icu/api/v1"

// Config holds all process settings. Loaded once at startup and never
// mutated afterwards; shared read-only by every request.
type Config struct {
	APIKey    string `env:"API_KEY" toml:"api_key"`
	AthleteID string `env:"ATHLETE_ID" toml:"athlete_id"`
	BaseURL   string `env:"INTERVALS_API_BASE_URL" toml:"base_url"`

	Transport    string `env:"MCP_TRANSPORT" envDefault:"stdio" toml:"-"`
	Host         string `env:"MCP_HOST" envDefault:"127.0.0.1" toml:"-"`
	Port         int    `env:"MCP_PORT" envDefault:"9000" toml:"-"`
	Path         string `env:"MCP_PATH" envDefault:"/mcp" toml:"-"`
	ServerAPIKey string `env:"MCP_SERVER_API_KEY" toml:"-"`

	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info" toml:"-"`
	HTTPTimeout time.Duration `env:"INTERVALS_HTTP_TIMEOUT" envDefault:"30s" toml:"-"`
}

var athleteIDPattern = regexp.MustCompile(`^i\d+$`)

// Load reads configuration, layering environment variables over any
// .intervals-mcp.toml found by walking up from the working directory.
// Environment values always win.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	file, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if file != "" {
		fileCfg := &Config{}
		if err := loadConfigFile(file, fileCfg); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		// File values only fill gaps the environment left empty.
		if cfg.APIKey == "" {
			cfg.APIKey = fileCfg.APIKey
		}
		if cfg.AthleteID == "" {
			cfg.AthleteID = fileCfg.AthleteID
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = fileCfg.BaseURL
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY is required (set env var or api_key in .intervals-mcp.toml)")
	}

	id, err := NormalizeAthleteID(c.AthleteID)
	if err != nil {
		return err
	}
	c.AthleteID = id

	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	transport, err := ParseTransport(c.Transport)
	if err != nil {
		return err
	}
	c.Transport = string(transport)

	if transport != TransportStdio && c.ServerAPIKey == "" {
		return fmt.Errorf("MCP_SERVER_API_KEY is required for the %s transport", transport)
	}
	return nil
}

// TransportKind returns the validated transport. Only meaningful after
// a successful Load.
func (c *Config) TransportKind() Transport {
	return Transport(c.Transport)
}

// ListenAddr returns the host:port bind address for networked transports.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NormalizeAthleteID validates an Intervals.icu athlete id. Bare digits
// are accepted and get the canonical "i" prefix.
func NormalizeAthleteID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("ATHLETE_ID is required (set env var or athlete_id in .intervals-mcp.toml)")
	}
	if athleteIDPattern.MatchString(id) {
		return id, nil
	}
	if digitsOnly(id) {
		return "i" + id, nil
	}
	return "", fmt.Errorf("invalid athlete id %q: expected i<digits>", id)
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ParseTransport maps a transport name to a Transport, accepting the
// streamable-http alias for http.
func ParseTransport(s string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stdio":
		return TransportStdio, nil
	case "http", "streamable-http":
		return TransportHTTP, nil
	case "sse":
		return TransportSSE, nil
	default:
		return "", fmt.Errorf("unsupported MCP_TRANSPORT %q: use one of stdio, http, streamable-http, sse", s)
	}
}
