package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is consulted by Load when no explicit path is given.
const EnvConfigPath = "PATHDEFENSE_CONFIG"

// Config корневая структура runtime-конфигурации.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Catalog CatalogConfig `yaml:"catalog"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

type GameConfig struct {
	Map          string `yaml:"map"`
	StartingCash int    `yaml:"starting_cash"`
	Seed         int64  `yaml:"seed"` // 0 - от текущего времени
}

type CatalogConfig struct {
	// Path to a balance catalog YAML file; empty means the embedded default.
	Path string `yaml:"path"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // пусто - HTTP не поднимаем
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Map:          DefaultMap,
			StartingCash: StartingCash,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file on top of Default().
// If path == "", the PATHDEFENSE_CONFIG env var is tried; with neither set the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would make the simulation unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.Game.Map == "" {
		errs = append(errs, errors.New("game.map must not be empty"))
	}
	// 0 в Options означает "по умолчанию", поэтому явный ноль из файла не принимаем
	if c.Game.StartingCash <= 0 {
		errs = append(errs, fmt.Errorf("game.starting_cash must be > 0, got %d", c.Game.StartingCash))
	}
	return errors.Join(errs...)
}
