package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultPageSize = 12

// Config holds CLI configuration stored at ~/.setlist/config.
type Config struct {
	Theme    string `yaml:"theme,omitempty"`
	VimKeys  bool   `yaml:"vim_keys"`
	PageSize int    `yaml:"page_size,omitempty"`
	SeedFile string `yaml:"seed_file,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{PageSize: defaultPageSize, LogLevel: "info"}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".setlist", "config")
}

// Load reads and parses the config file. Returns error if missing or insecure.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// Validate rejects values the UI cannot use.
func (c *Config) Validate() error {
	if c.PageSize < 0 {
		return fmt.Errorf("config page_size must be positive, got %d", c.PageSize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Set assigns a config key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "theme":
		c.Theme = value
	case "vim_keys":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("vim_keys: %w", err)
		}
		c.VimKeys = b
	case "page_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("page_size: %w", err)
		}
		c.PageSize = n
	case "seed_file":
		c.SeedFile = value
	case "log_file":
		c.LogFile = value
	case "log_level":
		c.LogLevel = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return c.Validate()
}

// Pages returns the list page size, falling back to the default.
func (c *Config) Pages() int {
	if c == nil || c.PageSize == 0 {
		return defaultPageSize
	}
	return c.PageSize
}

// ParseLevel maps a config log level to a slog level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", level)
	}
}
