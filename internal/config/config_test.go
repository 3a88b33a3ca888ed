package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// layered lookup only sees files the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "theme:\n  head: bright_yellow\nlog:\n  level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Theme.Head != "bright_yellow" {
		t.Errorf("Theme.Head = %q, expected bright_yellow", cfg.Theme.Head)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
	// Untouched fields keep their defaults
	if cfg.Theme.Body != Default().Theme.Body {
		t.Errorf("Theme.Body = %q, expected default", cfg.Theme.Body)
	}
	if cfg.Server.Address != ":23234" {
		t.Errorf("Server.Address = %q, expected default", cfg.Server.Address)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "theme: [", "failed to parse"},
		{"unknown color", "theme:\n  food: chartreuse\n", "theme.food"},
		{"bad glyph", "theme:\n  rect_glyph: \"#\"\n", "theme.rect_glyph"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			writeFile(t, path, tc.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".snake", "configs", "snake.yaml"), "server:\n  address: \":2222\"\n")
	writeFile(t, filepath.Join(work, "configs", "snake.yaml"), "server:\n  address: \":3333\"\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Address != ":2222" {
		t.Errorf("user config should win, got address %q", cfg.Server.Address)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".snake", "configs", "snake.yaml"), "log:\n  level: loud\n")
	writeFile(t, filepath.Join(work, "configs", "snake.yaml"), "theme:\n  border: blue\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Theme.Border != "blue" {
		t.Errorf("local config should be used after invalid user config, got border %q", cfg.Theme.Border)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, expected info", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"multibyte glyph", func(c *Config) { c.Theme.OvalGlyph = "◖◗" }, false},
		{"three char glyph", func(c *Config) { c.Theme.OvalGlyph = "(o)" }, true},
		{"empty address", func(c *Config) { c.Server.Address = "" }, true},
		{"zero idle timeout", func(c *Config) { c.Server.IdleTimeoutMinutes = 0 }, true},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"unknown border color", func(c *Config) { c.Theme.Border = "plaid" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMarshalLoadsBack(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Theme.Head = "cyan"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "idle_timeout_minutes: 30") {
		t.Errorf("Marshal() output missing server settings:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "dump.yaml")
	writeFile(t, path, string(data))
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Load(Marshal(cfg)) = %+v, expected %+v", loaded, cfg)
	}
}

func TestHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := HomePath("~/.snake/host_key")
	if err != nil {
		t.Fatalf("HomePath() failed: %v", err)
	}
	if want := filepath.Join(home, ".snake", "host_key"); got != want {
		t.Errorf("HomePath() = %q, expected %q", got, want)
	}

	if got, _ := HomePath("/etc/key"); got != "/etc/key" {
		t.Errorf("absolute path changed: %q", got)
	}
}
