package config

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/entity"
	"github.com/milk9111/starfield/ecs/system"
	"go.uber.org/zap"
)

// Classifier returns the star class classifier the config selects: the
// compiled script when one is set, nil (the builtin ranges) otherwise.
func (c *Config) Classifier(logger *zap.Logger) (entity.Classifier, error) {
	if c.StarClassScript == "" {
		return nil, nil
	}
	src, err := LoadScript(c.StarClassScript)
	if err != nil {
		return nil, fmt.Errorf("load star class script %s: %w", c.StarClassScript, err)
	}
	script, err := system.CompileClassScript(c.StarClassScript, src, logger)
	if err != nil {
		return nil, err
	}
	return script.Classify, nil
}

// Rand returns the simulation's random source. A zero seed uses the clock.
func (c *Config) Rand() *rand.Rand {
	seed := uint64(c.Seed)
	if c.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// DriverOptions assembles frame driver options for a viewport.
func (c *Config) DriverOptions(vp common.Viewport, logger *zap.Logger) (system.Options, error) {
	classify, err := c.Classifier(logger)
	if err != nil {
		return system.Options{}, err
	}
	return system.Options{
		Viewport:   vp,
		Counts:     c.Counts.ByKind(),
		Speed:      c.Speed.Base,
		MaxElapsed: c.MaxElapsed,
		Rand:       c.Rand(),
		Classify:   classify,
		Logger:     logger,
	}, nil
}

// RestartFields names the settings that differ between old and next but
// are only read at startup, so a hot reload cannot apply them.
func RestartFields(old, next *Config) []string {
	var out []string
	if old.Seed != next.Seed {
		out = append(out, "seed")
	}
	if old.MaxElapsed != next.MaxElapsed {
		out = append(out, "max_elapsed")
	}
	if old.Window != next.Window {
		out = append(out, "window")
	}
	if old.Logging != next.Logging {
		out = append(out, "logging")
	}
	return out
}
