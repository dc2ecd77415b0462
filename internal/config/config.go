// Package config loads and validates the name server configuration.
//
// Precedence, lowest first: built-in defaults, the YAML file, HAMURAI_*
// environment variables, the settings store (see internal/database) when one
// is configured, then command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrWebMD/hamurai-name-server/internal/zone"
)

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "HAMURAI_CONFIG"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const redacted = "********"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 53},
		Zone: ZoneConfig{
			Domain:  "ricklantis.com",
			Address: "147.182.185.61",
			TTL:     zone.DefaultTTL,
		},
		Logging: LoggingConfig{Level: "INFO", Format: "text"},
		API:     APIConfig{Host: "127.0.0.1", Port: 8080},
	}
}

// ResolveConfigPath picks the config file path: flag first, then $HAMURAI_CONFIG.
// Returns "" when neither is set.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(ConfigEnv))
}

// Load builds a validated configuration. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HAMURAI_HOST"); v != "" {
		cfg.Server.Host = v
	}
	cfg.Server.Port = envInt(os.Getenv("HAMURAI_PORT"), cfg.Server.Port)
	if v := os.Getenv("HAMURAI_ZONE"); v != "" {
		cfg.Zone.Domain = v
	}
	if v := os.Getenv("HAMURAI_ZONE_ADDRESS"); v != "" {
		cfg.Zone.Address = v
	}
	if v, err := strconv.ParseUint(strings.TrimSpace(os.Getenv("HAMURAI_TTL")), 10, 32); err == nil {
		cfg.Zone.TTL = uint32(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	cfg.API.Enabled = envBool(os.Getenv("HAMURAI_API_ENABLED"), cfg.API.Enabled)
	if v := os.Getenv("HAMURAI_API_KEY"); v != "" {
		cfg.API.APIKey = v
	}
	if v := os.Getenv("HAMURAI_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
}

func envInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

func envBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port must be 1..65535", ErrInvalidConfig)
	}
	cfg.Server.Host = strings.TrimSpace(cfg.Server.Host)
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}

	z, err := zone.New(cfg.Zone.Domain, cfg.Zone.Address, cfg.Zone.TTL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Zone.Domain = z.Domain
	cfg.Zone.Address = z.Address.Addr.String()
	cfg.Zone.TTL = z.TTL

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	switch cfg.Logging.Format {
	case "":
		cfg.Logging.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalidConfig, cfg.Logging.Format)
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	if cfg.API.Host == "" {
		cfg.API.Host = "127.0.0.1"
	}
	if cfg.API.Enabled {
		if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
			return fmt.Errorf("%w: api.port must be 1..65535", ErrInvalidConfig)
		}
	}

	cfg.Database.Path = strings.TrimSpace(cfg.Database.Path)
	return nil
}

// BuildZone returns the zone described by the configuration.
func (cfg *Config) BuildZone() (*zone.Zone, error) {
	return zone.New(cfg.Zone.Domain, cfg.Zone.Address, cfg.Zone.TTL)
}

// Redacted returns a copy that is safe to expose over the API.
func (cfg *Config) Redacted() Config {
	out := *cfg
	if out.API.APIKey != "" {
		out.API.APIKey = redacted
	}
	out.Logging.ExtraFields = maps.Clone(cfg.Logging.ExtraFields)
	return out
}
