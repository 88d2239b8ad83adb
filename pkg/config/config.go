// Package config loads CLI settings using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultFile is read from the working directory when no --config is given.
	DefaultFile = "quotegen.yaml"

	// EnvPrefix prefixes environment overrides, e.g. QUOTEGEN_FILES_CUSTOM.
	EnvPrefix = "QUOTEGEN_"

	DefaultWrapWidth    = 50
	DefaultHistorySize  = 100
	DefaultHistoryLimit = 10
)

// Config is the root configuration structure.
type Config struct {
	Files   FilesConfig   `koanf:"files"   validate:"required"`
	Display DisplayConfig `koanf:"display" validate:"required"`
	History HistoryConfig `koanf:"history" validate:"required"`
	Log     LogConfig     `koanf:"log"     validate:"required"`
}

// FilesConfig names the JSON files the CLI reads and writes.
type FilesConfig struct {
	Custom    string `koanf:"custom"    validate:"required"`
	History   string `koanf:"history"   validate:"required"`
	Favorites string `koanf:"favorites" validate:"required"`
}

// DisplayConfig contains rendering settings.
type DisplayConfig struct {
	Width int `koanf:"width" validate:"required,min=10,max=200"`
}

// HistoryConfig bounds the history log.
type HistoryConfig struct {
	Size  int `koanf:"size"  validate:"required,min=1,max=10000"`
	Limit int `koanf:"limit" validate:"min=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"files.custom":    "custom_quotes.json",
		"files.history":   ".quote_history.json",
		"files.favorites": "favorite_quotes.json",

		"display.width": DefaultWrapWidth,

		"history.size":  DefaultHistorySize,
		"history.limit": DefaultHistoryLimit,

		"log.level": "info",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (QUOTEGEN_ prefix)
//  2. The config file at path, or DefaultFile if path is empty and it exists
//  3. Default values
//
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %q: %w", path, err)
		}
	} else if err := loadFileIfExists(k, DefaultFile); err != nil {
		return nil, fmt.Errorf("loading config %q: %w", DefaultFile, err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
