package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig
	Team    TeamConfig
	Preview PreviewConfig
	Audio   AudioConfig
	UI      UIConfig
	Log     LogConfig
	Keys    map[string][]string
}

// CatalogConfig says where characters come from. Path (a TOML file) wins over Database.
type CatalogConfig struct {
	Path     string
	Database string
	Seed     bool
}

type TeamConfig struct {
	Slots int
	Path  string
}

// PreviewConfig holds the transform constants.
type PreviewConfig struct {
	Sensitivity float64
	ZoomStep    float64 `mapstructure:"zoom_step"`
	MinZoom     float64 `mapstructure:"min_zoom"`
	MaxZoom     float64 `mapstructure:"max_zoom"`
}

type AudioConfig struct {
	Enabled    bool
	SampleRate int `mapstructure:"sample_rate"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Sort      string
	CardWidth int `mapstructure:"card_width"`
}

type LogConfig struct {
	File string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "rosterpick")
}

// Load reads configuration from file and env. Env var overrides use prefix ROSTERPICK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.database", filepath.Join(dataDir(), "catalog.db"))
	v.SetDefault("catalog.seed", true)
	v.SetDefault("team.slots", 3)
	v.SetDefault("team.path", filepath.Join(dataDir(), "team.toml"))
	v.SetDefault("preview.sensitivity", 0.3)
	v.SetDefault("preview.zoom_step", 0.001)
	v.SetDefault("preview.min_zoom", 0.6)
	v.SetDefault("preview.max_zoom", 2.2)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("ui.sort", "insertion")
	v.SetDefault("ui.card_width", 22)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ROSTERPICK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rosterpick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROSTERPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit ROSTERPICK_CONFIG must exist and parse.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the controllers cannot work with.
func (c Config) Validate() error {
	if c.Team.Slots <= 0 || c.Team.Slots > 9 {
		return fmt.Errorf("team.slots must be between 1 and 9, got %d", c.Team.Slots)
	}
	if c.Preview.MinZoom <= 0 || c.Preview.MaxZoom < c.Preview.MinZoom {
		return fmt.Errorf("preview zoom bounds [%g, %g] are invalid", c.Preview.MinZoom, c.Preview.MaxZoom)
	}
	if c.Preview.Sensitivity == 0 {
		return fmt.Errorf("preview.sensitivity must be non-zero")
	}
	if c.UI.CardWidth < 8 {
		return fmt.Errorf("ui.card_width must be at least 8, got %d", c.UI.CardWidth)
	}
	return nil
}
