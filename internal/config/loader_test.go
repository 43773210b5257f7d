package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs.
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
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultAppConfig() {
		t.Errorf("embedded defaults differ from DefaultAppConfig():\n got %+v\nwant %+v", cfg, DefaultAppConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "game:\n  seed: 42\n  tick_rate: 60\nserver:\n  idle_timeout: 5m\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Seed != 42 || cfg.Game.TickRate != 60 {
		t.Errorf("game = %+v, want seed 42 tick 60", cfg.Game)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("idle timeout = %v, want 5m", cfg.Server.IdleTimeout)
	}
	// Unset sections keep their defaults.
	if cfg.Storage.DBPath != DefaultAppConfig().Storage.DBPath {
		t.Errorf("db path = %q, want default", cfg.Storage.DBPath)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		invalid bool
	}{
		{name: "missing"},
		{name: "malformed", content: "game: [", create: true},
		{name: "invalid tick rate", content: "game:\n  tick_rate: 0\n", create: true, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if tt.create {
				writeFile(t, path, tt.content)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if tt.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, LocalConfigPath), "game:\n  seed: 2\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Seed != 2 {
		t.Errorf("local config not used: seed = %d", cfg.Game.Seed)
	}

	writeFile(t, filepath.Join(home, ".tui2048", "config.yaml"), "game:\n  seed: 1\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Seed != 1 {
		t.Errorf("user config should win over local: seed = %d", cfg.Game.Seed)
	}
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".tui2048", "config.yaml"), "log: {{")
	writeFile(t, filepath.Join(work, LocalConfigPath), "log:\n  level: debug\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug from local config", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		ok     bool
	}{
		{"defaults", func(*AppConfig) {}, true},
		{"zero tick rate", func(c *AppConfig) { c.Game.TickRate = 0 }, false},
		{"huge tick rate", func(c *AppConfig) { c.Game.TickRate = 1000 }, false},
		{"empty db path", func(c *AppConfig) { c.Storage.DBPath = "" }, false},
		{"empty address", func(c *AppConfig) { c.Server.Address = "" }, false},
		{"negative idle", func(c *AppConfig) { c.Server.IdleTimeout = -time.Second }, false},
		{"no idle timeout", func(c *AppConfig) { c.Server.IdleTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAppConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "out.yaml")

	cfg := DefaultAppConfig()
	cfg.Game.Seed = 99
	cfg.Server.IdleTimeout = 90 * time.Second

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}
