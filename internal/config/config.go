// Package config handles the XDG configuration directory, file paths and
// the optional config.toml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todopad"

	// ConfigFile is the optional TOML settings filename.
	ConfigFile = "config.toml"

	// DBFile is the default task database filename.
	DBFile = "tasks.db"

	// LogFile is the log filename used by the interactive UI.
	LogFile = "todopad.log"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DBPath is the task database path. Defaults to Dir/tasks.db.
	DBPath string `toml:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFormat is one of text, json, logfmt.
	LogFormat string `toml:"log_format"`

	// Debug enables debug logging.
	Debug bool `toml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"-"`
}

// New creates a new Config with the default or specified config directory
// and applies config.toml from that directory if it exists.
// If configDir is empty, uses XDG_CONFIG_HOME/todopad or $HOME/.config/todopad.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, DBFile)
	}
	return cfg, nil
}

// loadFile decodes config.toml into c. A missing file is not an error.
func (c *Config) loadFile() error {
	path := c.FilePath()
	_, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
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

// FilePath returns the path to config.toml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LogPath returns the path to the UI log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EffectiveLogLevel returns the level to log at, honoring Debug.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
