// Package config loads service configuration from a TOML file with
// environment variable overrides. Configuration is read once at startup
// and immutable afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultListenAddr    = ":8080"
	DefaultStoreBackend  = "file"
	DefaultResolveBudget = 10 * time.Second
)

// Config holds the full service configuration.
type Config struct {
	Server Server `toml:"server"`
	OAuth  OAuth  `toml:"oauth"`
	Store  Store  `toml:"store"`
}

// Server configures the HTTP listener and resolution behaviour.
type Server struct {
	ListenAddr    string        `toml:"listen_addr"`
	ResolveBudget time.Duration `toml:"resolve_budget"`
}

// OAuth identifies the Google OAuth client used for all token exchanges.
type OAuth struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// Store selects and locates the credential persistence backend.
type Store struct {
	Backend string `toml:"backend"` // "file" or "sqlite"
	Path    string `toml:"path"`
}

// DefaultPath returns the default config file location,
// ~/.workspaced/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".workspaced", "config.toml"), nil
}

// Load reads configuration from the given TOML file, fills defaults, and
// applies environment overrides. A missing file is not an error; the
// environment alone can carry a full configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: Server{
			ListenAddr:    DefaultListenAddr,
			ResolveBudget: DefaultResolveBudget,
		},
		Store: Store{
			Backend: DefaultStoreBackend,
		},
	}

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays WORKSPACED_* variables on top of the file values.
// GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are also honoured since
// that is how Google's own tooling names them.
func (c *Config) applyEnv() {
	if v := os.Getenv("WORKSPACED_LISTEN_ADDR"); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv("WORKSPACED_RESOLVE_BUDGET"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Server.ResolveBudget = d
		} else if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Server.ResolveBudget = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("WORKSPACED_STORE_BACKEND"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("WORKSPACED_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		c.OAuth.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		c.OAuth.ClientSecret = v
	}
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown store backend %q (want \"file\" or \"sqlite\")", c.Store.Backend)
	}
	if c.Server.ResolveBudget <= 0 {
		return fmt.Errorf("resolve budget must be positive")
	}
	return nil
}
