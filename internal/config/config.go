// Package config handles the XDG configuration directory and the
// optional YAML settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "ttask"

	// SettingsFile is the YAML settings filename inside the config dir.
	SettingsFile = "config.yaml"

	// StateFile is the default task state filename inside the config dir.
	StateFile = "tasks.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataFile is the task state file path. Defaults to tasks.json
	// inside Dir; the data_file setting overrides it.
	DataFile string

	// DefaultPriority optionally overrides the baseline priority for
	// tasks added without one ("low", "medium", "high" or a rank).
	// Empty keeps the built-in default.
	DefaultPriority string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// NoColor disables colored console output.
	NoColor bool
}

// settings is the config.yaml layout. Every key is optional.
type settings struct {
	DataFile        string `yaml:"data_file"`
	DefaultPriority string `yaml:"default_priority"`
	Quiet           bool   `yaml:"quiet"`
	NoColor         bool   `yaml:"no_color"`
}

// New creates a Config rooted at the default or specified config
// directory and applies the settings file if one exists. A missing or
// empty settings file is fine; an unparsable one, or one with unknown
// keys, produces a warning on warnW and the defaults stay in effect.
// The NO_COLOR environment variable disables color regardless of
// settings.
func New(configDir string, warnW io.Writer) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:      dir,
		DataFile: filepath.Join(dir, StateFile),
	}
	cfg.applySettings(warnW)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	return cfg, nil
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

// SettingsPath returns the path to the YAML settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// EnsureDataDir creates the directory holding the state file if it
// doesn't exist. Directory is created with mode 0700.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(filepath.Dir(c.DataFile), 0700)
}

func (c *Config) applySettings(warnW io.Writer) {
	path := c.SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		// No settings file; defaults apply.
		return
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s settings
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty settings file; defaults apply.
			return
		}
		if warnW != nil {
			fmt.Fprintf(warnW, "warning: ignoring %s: %v\n", path, err)
		}
		return
	}
	if s.DataFile != "" {
		c.DataFile = s.DataFile
	}
	c.DefaultPriority = s.DefaultPriority
	c.Quiet = s.Quiet
	c.NoColor = s.NoColor
}
