// Package config loads newsreels settings from a TOML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultPath is read when no explicit config file is given. It may be
// missing.
const DefaultPath = "newsreels.toml"

type Config struct {
	APIBaseURL   string        `toml:"api_base_url"  env:"NEWSREELS_API_BASE_URL"`
	Category     string        `toml:"category"      env:"NEWSREELS_CATEGORY"`
	AssetsDir    string        `toml:"assets_dir"    env:"NEWSREELS_ASSETS_DIR"`
	Language     string        `toml:"language"      env:"NEWSREELS_LANGUAGE"`
	LogPath      string        `toml:"log_path"      env:"NEWSREELS_LOG_PATH"`
	LogLevel     string        `toml:"log_level"     env:"NEWSREELS_LOG_LEVEL"`
	FetchTimeout time.Duration `toml:"fetch_timeout" env:"NEWSREELS_FETCH_TIMEOUT"`

	Window WindowConfig `toml:"window"`
	Theme  ThemeConfig  `toml:"theme"`
	Touch  TouchConfig  `toml:"touch"`
	Swipe  SwipeConfig  `toml:"swipe"`
}

type WindowConfig struct {
	Title      string `toml:"title"      env:"NEWSREELS_WINDOW_TITLE"`
	Fullscreen bool   `toml:"fullscreen" env:"NEWSREELS_FULLSCREEN"`
	Borderless bool   `toml:"borderless" env:"NEWSREELS_BORDERLESS"`
}

type ThemeConfig struct {
	FontPath       string `toml:"font_path"       env:"NEWSREELS_FONT_PATH"`
	BackgroundPath string `toml:"background_path" env:"NEWSREELS_BACKGROUND_PATH"`
	AccentColor    uint32 `toml:"accent_color"    env:"NEWSREELS_ACCENT_COLOR"`
}

// TouchConfig points at an evdev touch panel. Empty disables it.
type TouchConfig struct {
	Device string `toml:"device" env:"NEWSREELS_TOUCH_DEVICE"`
}

type SwipeConfig struct {
	TriggerRatio float64 `toml:"trigger_ratio" env:"NEWSREELS_SWIPE_TRIGGER_RATIO"`
	Tension      float64 `toml:"tension"       env:"NEWSREELS_SPRING_TENSION"`
	Friction     float64 `toml:"friction"      env:"NEWSREELS_SPRING_FRICTION"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		APIBaseURL:   "http://localhost:8080",
		AssetsDir:    "assets",
		Language:     "tr",
		LogLevel:     "info",
		FetchTimeout: 10 * time.Second,
		Window: WindowConfig{
			Title: "Haber Reels",
		},
		Theme: ThemeConfig{
			FontPath:    "assets/fonts/NotoSans-Regular.ttf",
			AccentColor: 0xE63946,
		},
		Swipe: SwipeConfig{
			TriggerRatio: 0.25,
			Tension:      500,
			Friction:     50,
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path reads DefaultPath if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the deck cannot run with.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("config: api_base_url is required")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("config: api_base_url %q must be an http(s) url", c.APIBaseURL)
	}
	if c.Swipe.TriggerRatio <= 0 || c.Swipe.TriggerRatio >= 1 {
		return fmt.Errorf("config: swipe.trigger_ratio %v must be between 0 and 1", c.Swipe.TriggerRatio)
	}
	if c.Swipe.Tension <= 0 || c.Swipe.Friction <= 0 {
		return errors.New("config: swipe tension and friction must be positive")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config: fetch_timeout %v must be positive", c.FetchTimeout)
	}
	return nil
}
