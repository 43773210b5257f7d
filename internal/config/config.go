// Package config provides YAML-based application configuration loading
// for the 2048 terminal game and its SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// AppConfig contains all configuration for the application.
type AppConfig struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines engine and tick loop parameters.
// A zero seed means a clock-derived seed per game.
type GameConfig struct {
	Seed     int64 `yaml:"seed"`
	TickRate int   `yaml:"tick_rate"`
}

// StorageConfig defines where scores and preferences are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logger parameters.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration can be used as-is.
func (c AppConfig) Validate() error {
	if c.Game.TickRate <= 0 || c.Game.TickRate > 240 {
		return fmt.Errorf("%w: game.tick_rate must be in 1..240, got %d", ErrInvalidConfig, c.Game.TickRate)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalidConfig)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address is empty", ErrInvalidConfig)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout is negative", ErrInvalidConfig)
	}
	return nil
}
