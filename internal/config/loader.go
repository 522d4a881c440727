// Package config provides configuration loading and management for todo.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the config file relative
	// to the working directory.
	DefaultConfigPath = ".todo/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "TODO"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies
// defaults, merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath. A missing config file is
// not an error: the defaults (plus environment overrides) are returned.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)

		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     err,
			}
		}

		if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to parse config file",
				Err:     err,
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "cannot access config file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv(EnvPrefix + "_STORE_SAVE_ON_EXIT"); v != "" {
		cfg.Store.SaveOnExit = SaveOnExit(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_MAX_FILES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Log.MaxFiles = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_LOG_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Log.MaxAge = d
		}
	}
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones and
// decodes via the yaml tags so snake_case keys like save_on_exit map to
// their struct fields.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		if to == reflect.TypeOf(SaveOnExit("")) {
			return SaveOnExit(data.(string)), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads
// configuration. If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
