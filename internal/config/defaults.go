package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tui2048.yaml
var defaultAppYAML []byte

// DefaultAppConfig returns the hardcoded default configuration.
// It matches the embedded defaults/tui2048.yaml.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Game: GameConfig{
			Seed:     0,
			TickRate: 30,
		},
		Storage: StorageConfig{
			DBPath: "~/.tui2048/scores.db",
		},
		Server: ServerConfig{
			Address:     "0.0.0.0:23234",
			HostKeyPath: ".ssh/tui2048_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAppYAML
}
