package main

import (
	"os"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/config"
	"github.com/milk9111/starfield/ecs/system"
	"go.uber.org/zap"
)

// statsEvery is how many frames pass between debug stat lines.
const statsEvery = 300

type Game struct {
	cfg     *config.Config
	cfgPath string
	logger  *zap.Logger

	driver  *system.FrameDriver
	surface *Surface
	input   *Input
	pauseUI *ebitenui.UI
	watcher *config.Watcher

	width, height int
	resized       bool

	showHUD bool
	paused  bool
	quit    bool
	stats   system.FrameStats
}

func NewGame(cfg *config.Config, cfgPath string, showHUD bool, logger *zap.Logger) (*Game, error) {
	vp := common.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	opts, err := cfg.DriverOptions(vp, logger)
	if err != nil {
		return nil, err
	}
	driver, err := system.NewFrameDriver(opts)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		cfgPath: cfgPath,
		logger:  logger,
		driver:  driver,
		surface: &Surface{},
		input:   NewInput(),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		showHUD: showHUD,
	}
	g.pauseUI = NewPauseUI(g)
	g.watch()
	return g, nil
}

// watch starts hot reload for the config file and script, when there are
// files on disk to watch.
func (g *Game) watch() {
	var paths []string
	if g.cfgPath != "" {
		paths = append(paths, g.cfgPath)
	}
	// Embedded scripts have no file to watch.
	if g.cfg.StarClassScript != "" {
		if _, err := os.Stat(g.cfg.StarClassScript); err == nil {
			paths = append(paths, g.cfg.StarClassScript)
		}
	}
	if len(paths) == 0 {
		return
	}
	w, err := config.NewWatcher(paths...)
	if err != nil {
		g.logger.Warn("hot reload disabled", zap.Error(err))
		return
	}
	g.watcher = w
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.PausePressed {
		g.setPaused(!g.paused)
	}
	if g.input.HUDPressed {
		g.showHUD = !g.showHUD
	}
	if g.input.BoostHeld {
		g.driver.SetSpeed(g.cfg.Speed.Boost)
	} else {
		g.driver.SetSpeed(g.cfg.Speed.Base)
	}

	if g.resized {
		g.resized = false
		vp := common.Viewport{Width: float64(g.width), Height: float64(g.height)}
		if err := g.driver.Resize(vp); err != nil {
			g.logger.Error("resize failed", zap.Error(err))
		}
	}

	g.drainWatcher()

	if g.paused {
		g.pauseUI.Update()
	}
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.driver.Stop()
	} else {
		g.driver.Start()
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	open := g.watcher.Drain(g.reload, func(err error) {
		g.logger.Error("watch error", zap.Error(err))
	})
	if !open {
		g.watcher = nil
	}
}

// reload re-reads the config after a change on disk. A config that fails to
// load or validate is logged and the running one is kept.
func (g *Game) reload(path string) {
	g.logger.Info("reloading", zap.String("path", path))

	cfg := g.cfg
	if g.cfgPath != "" {
		next, err := config.Load(g.cfgPath)
		if err != nil {
			g.logger.Error("reload config failed", zap.Error(err))
			return
		}
		cfg = next
	}

	classify, err := cfg.Classifier(g.logger)
	if err != nil {
		g.logger.Error("reload star class script failed", zap.Error(err))
		return
	}
	g.driver.SetClassifier(classify)

	if restart := config.RestartFields(g.cfg, cfg); len(restart) > 0 {
		g.logger.Warn("config changes need a restart", zap.Strings("fields", restart))
	}

	if cfg.Counts != g.cfg.Counts {
		if err := g.driver.Reconfigure(cfg.Counts.ByKind()); err != nil {
			g.logger.Error("reconfigure failed", zap.Error(err))
			return
		}
	}
	g.cfg = cfg
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	if g.driver.Running() {
		g.stats = g.driver.Tick(time.Now(), g.surface)
		if g.stats.Frame%statsEvery == 0 {
			g.logger.Debug("frame", zap.Object("stats", g.stats))
		}
	}

	if g.showHUD {
		drawHUD(screen, g.stats, g.driver.Speed())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return g.width, g.height
}
