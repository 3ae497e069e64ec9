package config

import (
	"slices"
	"testing"
	"time"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/system"
	"go.uber.org/zap/zaptest"
)

func TestDriverOptions(t *testing.T) {
	cfg := defaults()
	cfg.Seed = 42
	cfg.Counts = Counts{Stars: 10, Suns: 2}
	cfg.StarClassScript = "star_class.tengo"

	opts, err := cfg.DriverOptions(common.Viewport{Width: 640, Height: 480}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Classify == nil {
		t.Fatalf("script classifier not wired")
	}
	for _, hue := range []float64{0, 45, 70, 100, 200, 300} {
		if got, want := opts.Classify(hue), component.ClassForHue(hue); got != want {
			t.Fatalf("embedded script Classify(%v) = %v, want %v", hue, got, want)
		}
	}

	d, err := system.NewFrameDriver(opts)
	if err != nil {
		t.Fatalf("driver: %v", err)
	}
	if d.Count(component.KindStar) != 10 || d.Count(component.KindSun) != 2 || d.Speed() != cfg.Speed.Base {
		t.Fatalf("driver not configured: %v speed=%v", d.Counts(), d.Speed())
	}
}

func TestClassifierErrors(t *testing.T) {
	cfg := defaults()
	if c, err := cfg.Classifier(nil); c != nil || err != nil {
		t.Fatalf("empty script should select the builtin, got %v %v", c, err)
	}
	cfg.StarClassScript = "does_not_exist.tengo"
	if _, err := cfg.Classifier(nil); err == nil {
		t.Fatalf("missing script should fail")
	}
}

func TestSeededRandIsRepeatable(t *testing.T) {
	cfg := defaults()
	cfg.Seed = 7
	a, b := cfg.Rand(), cfg.Rand()
	for range 10 {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("same seed should give the same sequence")
		}
	}
}

func TestRestartFields(t *testing.T) {
	cases := []struct {
		name   string
		change func(c *Config)
		want   []string
	}{
		{"unchanged", func(*Config) {}, nil},
		{"live_fields", func(c *Config) {
			c.Counts.Stars = 5
			c.Speed.Boost = 2
			c.StarClassScript = "star_class.tengo"
		}, nil},
		{"seed", func(c *Config) { c.Seed = 9 }, []string{"seed"}},
		{"several", func(c *Config) {
			c.MaxElapsed = time.Second
			c.Window.Width = 640
			c.Logging.Level = "debug"
		}, []string{"max_elapsed", "window", "logging"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next := defaults()
			c.change(next)
			if got := RestartFields(defaults(), next); !slices.Equal(got, c.want) {
				t.Fatalf("RestartFields = %v, want %v", got, c.want)
			}
		})
	}
}
