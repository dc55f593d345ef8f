// Package config handles the XDG configuration directory and settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "syncdo"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "config.toml"

	// EnvBaseURL overrides the configured base URL when set.
	EnvBaseURL = "SYNCDO_BASE_URL"

	// DefaultPollInterval is how often the UI re-fetches the task list.
	DefaultPollInterval = 30 * time.Second
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the remote task service origin.
	BaseURL string

	// PollInterval is the UI refresh interval.
	PollInterval time.Duration

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the on-disk shape of config.toml.
type fileConfig struct {
	BaseURL             string `toml:"base_url"`
	PollIntervalSeconds int    `toml:"poll_interval_seconds"`
}

// New creates a Config with the default or specified config directory,
// applying config.toml (when present) and then environment overrides.
// If configDir is empty, uses XDG_CONFIG_HOME/syncdo or $HOME/.config/syncdo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:          dir,
		PollInterval: DefaultPollInterval,
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}

// loadFile applies config.toml when it exists. A missing file is fine;
// an unreadable one is not.
func (c *Config) loadFile() error {
	path := filepath.Join(c.Dir, ConfigFile)

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.PollIntervalSeconds > 0 {
		c.PollInterval = time.Duration(fc.PollIntervalSeconds) * time.Second
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the settings file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LogPath returns the path to the diagnostic log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, "logs", AppName+".log")
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
