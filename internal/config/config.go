// Package config resolves where the task files live and how the CLI behaves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"todo/internal/logging"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// OpenFile is the default filename of the open task store.
	OpenFile = "cli_task.db"

	// DoneFile is the default filename of the completed task store.
	DoneFile = "done.db"

	// UserConfigFile is the config filename inside the user config directory.
	UserConfigFile = "config.toml"
)

// Environment variables read by Load.
const (
	EnvDir      = "TODO_DIR"
	EnvLogLevel = "TODO_LOG_LEVEL"
)

// projectConfigNames are checked in the working directory, in order.
var projectConfigNames = []string{"todo.toml", ".todo.toml", "todo.yaml", "todo.yml"}

// Config holds store paths and output settings.
type Config struct {
	// Dir is the directory holding the task files. Empty means the working directory.
	Dir string `toml:"dir" yaml:"dir"`

	// OpenFile is the open task store filename, relative to Dir.
	OpenFile string `toml:"open_file" yaml:"open_file"`

	// DoneFile is the completed task store filename, relative to Dir.
	DoneFile string `toml:"done_file" yaml:"done_file"`

	// LogLevel is the diagnostic level on stderr.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"quiet" yaml:"quiet"`

	// Debug forces debug logging. Set from the --debug flag only.
	Debug bool `toml:"-" yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OpenFile: OpenFile,
		DoneFile: DoneFile,
		LogLevel: logging.DefaultLevel,
	}
}

// New creates a default Config rooted at dir.
func New(dir string) *Config {
	cfg := Default()
	cfg.Dir = dir
	return cfg
}

// Load builds the configuration from, in increasing priority:
// defaults, a config file, and environment variables.
// If path is empty the config file is discovered with FindConfigFile;
// an explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	file := path
	if file == "" {
		file = FindConfigFile()
	}
	if file != "" {
		if err := loadFile(cfg, file); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", file, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// FindConfigFile returns the first config file found in the working
// directory, then in the user config directory. Returns "" if none exist.
func FindConfigFile() string {
	for _, name := range projectConfigNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	userPath := filepath.Join(DefaultConfigDir(), UserConfigFile)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// DefaultConfigDir returns the user configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func loadFile(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.DecodeFile(path, cfg)
		return err
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDir); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// OpenPath returns the path to the open task store.
func (c *Config) OpenPath() string {
	return c.path(c.OpenFile, OpenFile)
}

// DonePath returns the path to the completed task store.
func (c *Config) DonePath() string {
	return c.path(c.DoneFile, DoneFile)
}

func (c *Config) path(name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

// EffectiveLogLevel returns the level to log at, honoring Debug.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	if c.LogLevel == "" {
		return logging.DefaultLevel
	}
	return c.LogLevel
}

// EnsureDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDir() error {
	if c.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

