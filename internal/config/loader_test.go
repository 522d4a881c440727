package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
store:
  path: /data/tasks.json
  save_on_exit: always
log:
  level: debug
  dir: /data/logs
  max_files: 3
  max_age: 24h
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Store.Path != "/data/tasks.json" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Store.SaveOnExit != SaveOnExitAlways {
		t.Errorf("Store.SaveOnExit = %q, want always", cfg.Store.SaveOnExit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.MaxFiles != 3 {
		t.Errorf("Log.MaxFiles = %d, want 3", cfg.Log.MaxFiles)
	}
	if cfg.Log.MaxAge != 24*time.Hour {
		t.Errorf("Log.MaxAge = %v, want 24h", cfg.Log.MaxAge)
	}
}

func TestLoadConfig_SnakeCaseKeys(t *testing.T) {
	// Multi-word keys only reach their fields through the yaml tags.
	path := writeConfig(t, `
store:
  save_on_exit: never
log:
  max_files: 2
  max_age: 12h
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Store.SaveOnExit != SaveOnExitNever {
		t.Errorf("Store.SaveOnExit = %q, want never", cfg.Store.SaveOnExit)
	}
	if cfg.Log.MaxFiles != 2 {
		t.Errorf("Log.MaxFiles = %d, want 2", cfg.Log.MaxFiles)
	}
	if cfg.Log.MaxAge != 12*time.Hour {
		t.Errorf("Log.MaxAge = %v, want 12h", cfg.Log.MaxAge)
	}
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	path := writeConfig(t, `
store:
  path: mytasks.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Store.Path != "mytasks.json" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Store.SaveOnExit != SaveOnExitAsk {
		t.Errorf("Store.SaveOnExit = %q, want default ask", cfg.Store.SaveOnExit)
	}
	if cfg.Log.Dir != DefaultLogDir {
		t.Errorf("Log.Dir = %q, want default", cfg.Log.Dir)
	}
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(filepath.Join(tmpDir, "nope.yaml"))
	if err != nil {
		t.Fatalf("Load should not error for a missing config file: %v", err)
	}
	if cfg.Store.Path != DefaultStorePath {
		t.Errorf("Store.Path = %q, want default", cfg.Store.Path)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "store: [not: valid")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should error for invalid YAML")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error should be a LoadError, got %T", err)
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	path := writeConfig(t, `
store:
  save_on_exit: sometimes
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should error for invalid save_on_exit")
	}
	if !strings.Contains(err.Error(), "save_on_exit") {
		t.Errorf("error = %v, want mention of save_on_exit", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
store:
  path: from-file.json
`)

	t.Setenv("TODO_STORE_PATH", "from-env.json")
	t.Setenv("TODO_LOG_LEVEL", "error")
	t.Setenv("TODO_LOG_MAX_FILES", "9")
	t.Setenv("TODO_LOG_MAX_AGE", "48h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Store.Path != "from-env.json" {
		t.Errorf("Store.Path = %q, env should win over file", cfg.Store.Path)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Log.MaxFiles != 9 {
		t.Errorf("Log.MaxFiles = %d, want 9", cfg.Log.MaxFiles)
	}
	if cfg.Log.MaxAge != 48*time.Hour {
		t.Errorf("Log.MaxAge = %v, want 48h", cfg.Log.MaxAge)
	}
}

func TestLoadConfig_EnvOverrideValidated(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TODO_STORE_SAVE_ON_EXIT", "sometimes")

	_, err := Load(filepath.Join(tmpDir, "nope.yaml"))
	if err == nil {
		t.Fatal("Load should reject an invalid env override")
	}
}

func TestExample_RoundTrips(t *testing.T) {
	data, err := Example()
	if err != nil {
		t.Fatalf("Example: %v", err)
	}
	if !strings.Contains(string(data), "# todo configuration") {
		t.Error("example should carry the explanatory header")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("example config should load cleanly: %v", err)
	}
	defaults := NewConfig()
	if *cfg != *defaults {
		t.Errorf("example config = %+v, want defaults %+v", cfg, defaults)
	}
}

func TestWriteExample(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".todo", "config.yaml")

	if err := WriteExample(path, false); err != nil {
		t.Fatalf("WriteExample: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("config file should exist")
	}

	// Refuses to overwrite without force.
	if err := WriteExample(path, false); err == nil {
		t.Error("WriteExample should refuse to overwrite without force")
	}
	if err := WriteExample(path, true); err != nil {
		t.Errorf("WriteExample with force: %v", err)
	}
}
