package entity

import (
	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
)

func (s *Spawner) NewStar() *component.Body {
	w, h := s.Viewport.Width, s.Viewport.Height
	b := &component.Body{Kind: component.KindStar}
	b.Pos = common.Vec3{X: s.spread(w, 0.5), Y: s.spread(h, 0.5), Z: s.near(w)}
	b.PrevZ = b.Pos.Z
	return b
}

func (s *Spawner) RecycleStar(b *component.Body) {
	s.recycleBox(b, s.Viewport.Width)
}

func (s *Spawner) NewDust() *component.Body {
	w, h := s.Viewport.Width, s.Viewport.Height
	b := &component.Body{Kind: component.KindDust}
	b.Pos = common.Vec3{X: s.spread(w, 0.5), Y: s.spread(h, 0.5), Z: s.near(w * 0.5)}
	b.PrevZ = b.Pos.Z
	return b
}

func (s *Spawner) RecycleDust(b *component.Body) {
	s.recycleBox(b, s.Viewport.Width*0.5)
}

// recycleBox puts b back at depth far somewhere inside the viewport frustum.
func (s *Spawner) recycleBox(b *component.Body, far float64) {
	b.Pos = common.Vec3{
		X: s.spread(s.Viewport.Width, 0.5),
		Y: s.spread(s.Viewport.Height, 0.5),
		Z: far,
	}
	b.PrevZ = far
}
