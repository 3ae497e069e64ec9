package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfield/config"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "path to a .yaml or .toml config (embedded defaults when empty)")
	logLevel := flag.String("log-level", "", "override the configured log level")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	hud := flag.Bool("hud", false, "show frame stats")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	// Each frame paints a translucent overlay instead of clearing, which is
	// what leaves the trails.
	ebiten.SetScreenClearedEveryFrame(false)

	game, err := NewGame(cfg, *cfgPath, *hud, logger)
	if err != nil {
		logger.Fatal("start", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run", zap.Error(err))
	}
}
