// Package config provides configuration data structures for todo.
package config

import (
	"time"
)

// SaveOnExit controls what happens to unsaved tasks when the user exits.
type SaveOnExit string

const (
	// SaveOnExitAsk prompts the user before exiting (default).
	SaveOnExitAsk SaveOnExit = "ask"
	// SaveOnExitAlways saves without prompting.
	SaveOnExitAlways SaveOnExit = "always"
	// SaveOnExitNever exits without saving or prompting.
	SaveOnExitNever SaveOnExit = "never"
)

// Config represents the complete todo configuration loaded from
// .todo/config.yaml.
type Config struct {
	Store StoreConfig `yaml:"store" json:"store"`
	Log   LogConfig   `yaml:"log"   json:"log"`
}

// StoreConfig configures task persistence.
type StoreConfig struct {
	// Path is the task file path (default: "todo.json" in the working
	// directory). Relative paths resolve against the working directory.
	Path string `yaml:"path" json:"path"`
	// SaveOnExit controls the exit behavior (default: ask).
	SaveOnExit SaveOnExit `yaml:"save_on_exit" json:"save_on_exit"`
}

// LogConfig configures file logging.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info).
	Level string `yaml:"level" json:"level"`
	// Dir is the log directory (default: ".todo/logs").
	Dir string `yaml:"dir" json:"dir"`
	// MaxFiles is the maximum number of log files to keep (default: 5).
	MaxFiles int `yaml:"max_files" json:"max_files"`
	// MaxAge is the maximum age of log files before cleanup (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age"`
}

// Default values.
const (
	DefaultStorePath   = "todo.json"
	DefaultLogLevel    = "info"
	DefaultLogDir      = ".todo/logs"
	DefaultMaxLogFiles = 5
	DefaultMaxLogAge   = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:       DefaultStorePath,
			SaveOnExit: SaveOnExitAsk,
		},
		Log: LogConfig{
			Level:    DefaultLogLevel,
			Dir:      DefaultLogDir,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Store.Path == "" {
		c.Store.Path = defaults.Store.Path
	}
	if c.Store.SaveOnExit == "" {
		c.Store.SaveOnExit = defaults.Store.SaveOnExit
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Store.Path == "" {
		errs = append(errs, &ValidationError{Field: "store.path", Message: "must not be empty"})
	}

	if c.Store.SaveOnExit != "" {
		switch c.Store.SaveOnExit {
		case SaveOnExitAsk, SaveOnExitAlways, SaveOnExitNever:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "store.save_on_exit",
				Message: "must be 'ask', 'always', or 'never'",
			})
		}
	}

	if c.Log.Level != "" {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}

	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
