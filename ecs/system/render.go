package system

import (
	"sort"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/render"
)

// painter draws one body. It returns false when the body could not be
// projected and nothing was drawn.
type painter func(s render.Surface, b *component.Body, vp common.Viewport) bool

var painters = [component.KindCount]painter{
	component.KindStar:      paintStar,
	component.KindDust:      paintDust,
	component.KindAsteroid:  paintAsteroid,
	component.KindPlanet:    paintPlanet,
	component.KindSpaceship: paintSpaceship,
	component.KindComet:     paintComet,
	component.KindSun:       paintSun,
	component.KindNebula:    paintNebula,
}

// SortByDepth orders entries farthest first. Equal depths keep handle
// order so the result does not depend on bucket layout.
func SortByDepth(entries []ecs.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		zi, zj := entries[i].Body.Pos.Z, entries[j].Body.Pos.Z
		if zi != zj {
			return zi > zj
		}
		return entries[i].Entity.ID < entries[j].Entity.ID
	})
}

// Paint draws entries in the order given. Dormant bodies draw nothing and
// are not counted.
func Paint(s render.Surface, entries []ecs.Entry, vp common.Viewport) (drawn, skipped int) {
	for _, e := range entries {
		b := e.Body
		if b == nil || !b.Kind.Valid() || b.Dormant() {
			continue
		}
		if painters[b.Kind](s, b, vp) {
			drawn++
		} else {
			skipped++
		}
	}
	return drawn, skipped
}
