package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/entity"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Counts          Counts        `yaml:"counts" toml:"counts"`
	Speed           SpeedConfig   `yaml:"speed" toml:"speed"`
	Seed            int64         `yaml:"seed" toml:"seed"` // 0 seeds from the clock
	MaxElapsed      time.Duration `yaml:"max_elapsed" toml:"max_elapsed"`
	StarClassScript string        `yaml:"star_class_script" toml:"star_class_script"` // empty uses the builtin hue ranges
	Window          WindowConfig  `yaml:"window" toml:"window"`
	Logging         LoggingConfig `yaml:"logging" toml:"logging"`
}

type Counts struct {
	Stars      int `yaml:"stars" toml:"stars"`
	Dust       int `yaml:"dust" toml:"dust"`
	Asteroids  int `yaml:"asteroids" toml:"asteroids"`
	Planets    int `yaml:"planets" toml:"planets"`
	Spaceships int `yaml:"spaceships" toml:"spaceships"`
	Comets     int `yaml:"comets" toml:"comets"`
	Suns       int `yaml:"suns" toml:"suns"`
	Nebulae    int `yaml:"nebulae" toml:"nebulae"`
}

// ByKind converts to the population counts the simulation takes.
func (c Counts) ByKind() entity.Counts {
	var out entity.Counts
	out[component.KindStar] = c.Stars
	out[component.KindDust] = c.Dust
	out[component.KindAsteroid] = c.Asteroids
	out[component.KindPlanet] = c.Planets
	out[component.KindSpaceship] = c.Spaceships
	out[component.KindComet] = c.Comets
	out[component.KindSun] = c.Suns
	out[component.KindNebula] = c.Nebulae
	return out
}

// SpeedConfig holds the shared speed scalar in depth units per millisecond.
type SpeedConfig struct {
	Base  float64 `yaml:"base" toml:"base"`
	Boost float64 `yaml:"boost" toml:"boost"`
}

type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
	Output string `yaml:"output" toml:"output"` // file path, stderr when empty
}

// Load reads the config at path, decoding by extension. An empty path loads
// the embedded defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the embedded starfield.yaml.
func Default() (*Config, error) {
	cfg, err := Parse(".yaml", defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("parse embedded config: %w", err)
	}
	return cfg, nil
}

// Parse decodes data over the built-in defaults and validates the result.
// ext selects the format: ".yaml", ".yml" or ".toml".
func Parse(ext string, data []byte) (*Config, error) {
	cfg := defaults()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"counts.stars", c.Counts.Stars},
		{"counts.dust", c.Counts.Dust},
		{"counts.asteroids", c.Counts.Asteroids},
		{"counts.planets", c.Counts.Planets},
		{"counts.spaceships", c.Counts.Spaceships},
		{"counts.comets", c.Counts.Comets},
		{"counts.suns", c.Counts.Suns},
		{"counts.nebulae", c.Counts.Nebulae},
	} {
		if f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.Speed.Base < 0 {
		return fmt.Errorf("%w: speed.base must not be negative, got %v", ErrInvalidConfig, c.Speed.Base)
	}
	if c.Speed.Boost < 0 {
		return fmt.Errorf("%w: speed.boost must not be negative, got %v", ErrInvalidConfig, c.Speed.Boost)
	}
	if c.MaxElapsed < 0 {
		return fmt.Errorf("%w: max_elapsed must not be negative, got %v", ErrInvalidConfig, c.MaxElapsed)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Counts: Counts{
			Stars:      1000,
			Dust:       20000,
			Asteroids:  50,
			Planets:    15,
			Spaceships: 15,
			Comets:     3,
			Suns:       5,
			Nebulae:    10,
		},
		Speed: SpeedConfig{
			Base:  0.05,
			Boost: 0.5,
		},
		MaxElapsed: 250 * time.Millisecond,
		Window: WindowConfig{
			Title:  "Starfield",
			Width:  1280,
			Height: 720,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
