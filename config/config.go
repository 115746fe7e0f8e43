package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("config: invalid settings")

// Config holds the demo's settings. CamWidth and CamHeight are the visible
// half extents in world units.
type Config struct {
	WindowWidth  int           `mapstructure:"window_width"`
	WindowHeight int           `mapstructure:"window_height"`
	Title        string        `mapstructure:"title"`
	TPS          int           `mapstructure:"tps"`
	Seed         uint64        `mapstructure:"seed"`
	Debug        bool          `mapstructure:"debug"`
	Ship         string        `mapstructure:"ship"`
	Weapon       string        `mapstructure:"weapon"`
	CamWidth     float64       `mapstructure:"cam_width"`
	CamHeight    float64       `mapstructure:"cam_height"`
	MaxShips     int           `mapstructure:"max_ships"`
	SpawnEvery   time.Duration `mapstructure:"spawn_every"`
	WatchPrefabs bool          `mapstructure:"watch_prefabs"`
}

// DefaultConfig returns the settings used when no file or env override is present.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		Title:        "shipwreck",
		TPS:          60,
		Seed:         0, // 0 means seed from the clock
		Ship:         "enemy_4.yaml",
		Weapon:       "blaster",
		CamWidth:     32,
		CamHeight:    18,
		MaxShips:     2,
		SpawnEvery:   2 * time.Second,
		WatchPrefabs: true,
	}
}

// Load reads settings from path, or from ./settings.{yaml,toml,json} when path
// is empty and such a file exists. SHIPWRECK_* environment variables win
// over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix("SHIPWRECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("settings")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("window_width", d.WindowWidth)
	v.SetDefault("window_height", d.WindowHeight)
	v.SetDefault("title", d.Title)
	v.SetDefault("tps", d.TPS)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("ship", d.Ship)
	v.SetDefault("weapon", d.Weapon)
	v.SetDefault("cam_width", d.CamWidth)
	v.SetDefault("cam_height", d.CamHeight)
	v.SetDefault("max_ships", d.MaxShips)
	v.SetDefault("spawn_every", d.SpawnEvery)
	v.SetDefault("watch_prefabs", d.WatchPrefabs)
}

func (c *Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.CamWidth <= 0 || c.CamHeight <= 0:
		return fmt.Errorf("%w: camera %gx%g", ErrInvalidConfig, c.CamWidth, c.CamHeight)
	case c.Ship == "":
		return fmt.Errorf("%w: no ship prefab", ErrInvalidConfig)
	case c.MaxShips < 1:
		return fmt.Errorf("%w: max_ships %d", ErrInvalidConfig, c.MaxShips)
	}
	return nil
}

// Step is the simulated duration of one tick.
func (c *Config) Step() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// PixelsPerUnit converts world units to window pixels.
func (c *Config) PixelsPerUnit() float64 {
	return float64(c.WindowWidth) / 2 / c.CamWidth
}
