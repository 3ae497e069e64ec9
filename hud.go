package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/system"
)

func drawHUD(screen *ebiten.Image, stats system.FrameStats, speed float64) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f  speed: %.3f\n", ebiten.ActualFPS(), ebiten.ActualTPS(), speed)
	fmt.Fprintf(&b, "drawn: %d  skipped: %d  frame: %d\n", stats.Drawn, stats.Skipped, stats.Frame)
	for _, k := range component.Kinds() {
		fmt.Fprintf(&b, "%-10s %d\n", k, stats.Counts[k])
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 10, 10)
}
