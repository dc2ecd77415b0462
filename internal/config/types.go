package config

import (
	"net"
	"strconv"
)

// ServerConfig contains the DNS listener settings.
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// Addr returns the host:port the UDP listener binds to.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ZoneConfig describes the single zone the server is authoritative for.
type ZoneConfig struct {
	Domain  string `json:"domain" yaml:"domain"`   // Zone apex, e.g. "ricklantis.com"
	Address string `json:"address" yaml:"address"` // IPv4 address returned for A queries
	TTL     uint32 `json:"ttl" yaml:"ttl"`         // TTL of the A answer in seconds
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level       string            `json:"level" yaml:"level"`
	Format      string            `json:"format" yaml:"format"` // "text" or "json"
	IncludePID  bool              `json:"include_pid" yaml:"include_pid"`
	ExtraFields map[string]string `json:"extra_fields,omitempty" yaml:"extra_fields,omitempty"`
}

// APIConfig contains management API settings.
//
// APIKey is a secret; use Config.Redacted before exposing a config.
type APIConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Host    string `json:"host" yaml:"host"`
	Port    int    `json:"port" yaml:"port"`
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// Addr returns the host:port of the management API.
func (a APIConfig) Addr() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// DatabaseConfig controls the optional SQLite settings store.
// An empty Path disables it.
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// Enabled reports whether a settings store is configured.
func (d DatabaseConfig) Enabled() bool { return d.Path != "" }

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server"`
	Zone     ZoneConfig     `json:"zone" yaml:"zone"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
	API      APIConfig      `json:"api" yaml:"api"`
	Database DatabaseConfig `json:"database" yaml:"database"`
}
