// Package config loads game settings from defaults, an optional file and
// ARENA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. ARENA_LOGLEVEL
const EnvPrefix = "ARENA"

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type SimConfig struct {
	Seed          int64   `mapstructure:"seed"`
	MaxFrameDelta float64 `mapstructure:"maxFrameDelta"`
	EnemyCount    int     `mapstructure:"enemyCount"`
}

type EnemyConfig struct {
	RecognitionRange float64 `mapstructure:"recognitionRange"`
	HeatRayRange     float64 `mapstructure:"heatRayRange"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Config is the full settings tree
type Config struct {
	LogLevel string       `mapstructure:"logLevel"`
	LogFile  string       `mapstructure:"logFile"`
	Window   WindowConfig `mapstructure:"window"`
	Sim      SimConfig    `mapstructure:"sim"`
	Enemy    EnemyConfig  `mapstructure:"enemy"`
	Audio    AudioConfig  `mapstructure:"audio"`
}

// New returns a viper instance carrying every default
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Tripod Arena")

	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.maxFrameDelta", 0.25)
	v.SetDefault("sim.enemyCount", 4)

	v.SetDefault("enemy.recognitionRange", 20.0)
	v.SetDefault("enemy.heatRayRange", 20.0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if non-empty) over the defaults. The file type follows
// its extension. A missing file is an error only when path was given.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return Decode(v)
}

// Decode unmarshals and validates a populated viper instance
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var (
	ErrWindowSize = errors.New("window size must be positive")
	ErrEnemyCount = errors.New("sim.enemyCount must be at least 1")
	ErrRange      = errors.New("enemy ranges must be positive")
	ErrVolume     = errors.New("audio.volume must be within [0, 1]")
)

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return ErrWindowSize
	case c.Sim.EnemyCount < 1:
		return ErrEnemyCount
	case c.Enemy.RecognitionRange <= 0 || c.Enemy.HeatRayRange <= 0:
		return ErrRange
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return ErrVolume
	}
	return nil
}
