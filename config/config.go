// Package config loads YAML configuration for the demo CLI and for
// integration tests. The library's programmatic API never requires
// it: callers that embed rcon-go construct a pool.Pool or
// session.Session directly with whatever options suit them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig identifies one RCON server to connect to.
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
}

// PoolConfig configures a connection pool against one server.
type PoolConfig struct {
	Server         ServerConfig `yaml:"server"`
	MaxWorkers     int          `yaml:"max_workers"`
	WireVersion    int          `yaml:"wire_version"`     // 1 or 2
	TimeoutSeconds int          `yaml:"timeout_seconds"`
	LogLevel       string       `yaml:"log_level"` // debug, info, warn, error
}

// AuditConfig configures the optional command audit trail.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
}

// Config is the top-level configuration for cmd/rconctl.
type Config struct {
	Pool  PoolConfig  `yaml:"pool"`
	Audit AuditConfig `yaml:"audit"`
}

// DefaultConfig returns a Config with sensible defaults: a local
// server on the standard RCON v2 port, four workers, no audit trail.
func DefaultConfig() Config {
	return Config{
		Pool: PoolConfig{
			Server: ServerConfig{
				Host: "127.0.0.1",
				Port: 10101,
			},
			MaxWorkers:     4,
			WireVersion:    2,
			TimeoutSeconds: 30,
			LogLevel:       "info",
		},
		Audit: AuditConfig{
			Enabled: false,
		},
	}
}

// Load reads config from a YAML file, starting from DefaultConfig and
// overlaying whatever the file sets. A missing file is not an error:
// Load returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
