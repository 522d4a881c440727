// Package config provides configuration loading and management for todo.
// This file renders the default config file written by "todo init".
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// exampleHeader is prepended to the generated config file.
const exampleHeader = `# todo configuration
#
# store.path          task file location (relative to the working directory)
# store.save_on_exit  ask | always | never
# log.level           debug | info | warn | error
# log.dir             log file directory
# log.max_files       number of log files to keep
# log.max_age         log retention, e.g. 168h
`

// Example renders the default configuration as commented YAML.
// Durations are written in their string form (e.g. "168h") so the file
// reads back through the loader's duration decode hook.
func Example() ([]byte, error) {
	defaults := NewConfig()
	doc := map[string]interface{}{
		"store": map[string]interface{}{
			"path":         defaults.Store.Path,
			"save_on_exit": string(defaults.Store.SaveOnExit),
		},
		"log": map[string]interface{}{
			"level":     defaults.Log.Level,
			"dir":       defaults.Log.Dir,
			"max_files": defaults.Log.MaxFiles,
			"max_age":   defaults.Log.MaxAge.String(),
		},
	}

	var buf bytes.Buffer
	buf.WriteString(exampleHeader)
	buf.WriteString("\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to render example config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to render example config: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteExample writes the default config file to path, creating parent
// directories. Refuses to overwrite an existing file unless force is set.
func WriteExample(path string, force bool) error {
	if path == "" {
		path = DefaultConfigPath
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	data, err := Example()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
