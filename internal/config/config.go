// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Default values.
const (
	DirName             = ".tada"
	ConfigFileName      = "config.toml"
	ListFileName        = "todo.lst"
	DefaultTheme        = "classic"
	DefaultBackupSuffix = "~"
	DefaultPreviewItems = 2
)

// Config holds the full configuration for tada.
type Config struct {
	// File forces a todo file, skipping local/global resolution.
	File string `toml:"file"`
	// GlobalFile is used when no local todo.lst exists.
	GlobalFile   string `toml:"global_file" validate:"required"`
	Theme        string `toml:"theme" validate:"oneof=classic neon mono"`
	BackupSuffix string `toml:"backup_suffix" validate:"required"`
	// PreviewItems is how many items per key preview mode shows.
	PreviewItems int  `toml:"preview_items" validate:"gte=1"`
	NoColor      bool `toml:"no_color"`
	Debug        bool `toml:"debug"`
}

var validate = validator.New()

// Dir returns ~/.tada.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	if cfg.GlobalFile == "" {
		if dir, err := Dir(); err == nil {
			cfg.GlobalFile = filepath.Join(dir, ListFileName)
		} else {
			cfg.GlobalFile = ListFileName
		}
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = DefaultBackupSuffix
	}
	if cfg.PreviewItems == 0 {
		cfg.PreviewItems = DefaultPreviewItems
	}
}

// Load builds the configuration in priority order:
// 1. Defaults
// 2. Config file (path, or TADA_CONFIG, or ~/.tada/config.toml); a missing
// file is not an error
// 3. Environment variables
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv("TADA_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		if dir, err := Dir(); err == nil {
			path = filepath.Join(dir, ConfigFileName)
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || explicit {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	setDefaults(cfg)
	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TADA_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("TADA_THEME"); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if v := os.Getenv("TADA_DEBUG"); v != "" {
		cfg.Debug = boolFromString(v)
	}
	// https://no-color.org: any non-empty value disables color.
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s %q fails %q", strings.ToLower(fe.Field()), fmt.Sprint(fe.Value()), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ResolveFile picks the todo file: File when set, else todo.lst in dir
// when it exists and global is false, else GlobalFile.
func (c *Config) ResolveFile(dir string, global bool) string {
	if c.File != "" {
		return c.File
	}
	if !global && dir != "" {
		local := filepath.Join(dir, ListFileName)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}
	return c.GlobalFile
}
