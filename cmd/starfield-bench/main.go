// starfield-bench runs the simulation headless for a fixed number of frames
// and reports frame timings.
//
// Profiling:
// go run ./cmd/starfield-bench -profile cpu
// go tool pprof -http=":8000" ./cpu.pprof
package main

import (
	"flag"
	"log"
	"time"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/config"
	"github.com/milk9111/starfield/ecs/render"
	"github.com/milk9111/starfield/ecs/system"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "path to a .yaml or .toml config (embedded defaults when empty)")
	frames := flag.Int("frames", 2000, "frames to simulate")
	seed := flag.Int64("seed", 1, "random seed")
	mode := flag.String("profile", "", "cpu, mem or empty for none")
	out := flag.String("profile-path", ".", "directory for profile output")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Seed = *seed

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	vp := common.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	opts, err := cfg.DriverOptions(vp, logger)
	if err != nil {
		logger.Fatal("options", zap.Error(err))
	}
	driver, err := system.NewFrameDriver(opts)
	if err != nil {
		logger.Fatal("driver", zap.Error(err))
	}

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*out), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*out), profile.NoShutdownHook).Stop()
	case "":
	default:
		logger.Fatal("unknown profile mode", zap.String("mode", *mode))
	}

	surface := render.NewRecorder(vp.Width, vp.Height)
	surface.Discard = true

	// Simulated time at 60fps, so results do not depend on wall clock jitter.
	now := time.Now()
	var slowest time.Duration
	var drawn, spawned int
	start := time.Now()
	for i := range *frames {
		t0 := time.Now()
		stats := driver.Tick(now.Add(time.Duration(i)*time.Second/60), surface)
		if d := time.Since(t0); d > slowest {
			slowest = d
		}
		drawn += stats.Drawn
		spawned += stats.Spawned
	}
	total := time.Since(start)

	logger.Info("bench done",
		zap.Int("frames", *frames),
		zap.Int("bodies", driver.Registry().Len()),
		zap.Duration("total", total),
		zap.Duration("mean", total/time.Duration(max(*frames, 1))),
		zap.Duration("slowest", slowest),
		zap.Int("drawn", drawn),
		zap.Int("transmuted", spawned),
		zap.Int("calls", surface.Total()),
	)
}
