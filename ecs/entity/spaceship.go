package entity

import (
	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
)

func (s *Spawner) NewSpaceship() *component.Body {
	w, h := s.Viewport.Width, s.Viewport.Height
	b := &component.Body{
		Kind: component.KindSpaceship,
		Ship: &component.Spaceship{
			Design:     s.design(),
			LightPhase: s.Rand.Float64() * 10,
		},
	}
	b.Pos = common.Vec3{X: s.spread(w, 0.5), Y: s.spread(h, 0.5), Z: s.near(w)}
	b.PrevZ = b.Pos.Z
	return b
}

// RecycleSpaceship also re-rolls the hull design.
func (s *Spawner) RecycleSpaceship(b *component.Body) {
	s.recycleBox(b, s.Viewport.Width)
	if b.Ship != nil {
		b.Ship.Design = s.design()
	}
}

func (s *Spawner) design() component.ShipDesign {
	return component.ShipDesign(s.Rand.IntN(int(component.ShipDesignCount)))
}
