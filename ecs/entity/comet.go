package entity

import (
	"github.com/milk9111/starfield/ecs/component"
)

func (s *Spawner) NewComet() *component.Body {
	b := &component.Body{Kind: component.KindComet, Comet: &component.Comet{}}
	s.ResetComet(b)
	return b
}

// ResetComet starts the comet over far away and off-screen, aimed to streak
// across the view, with an empty tail.
func (s *Spawner) ResetComet(b *component.Body) {
	w, h := s.Viewport.Width, s.Viewport.Height
	c := b.Comet
	if c == nil {
		c = &component.Comet{}
		b.Comet = c
	}

	b.Pos.Z = s.between(2*w, 3*w)
	b.Pos.X = s.spread(w, 2)
	b.Pos.Y = s.spread(h, 2)
	b.PrevZ = b.Pos.Z

	c.Vel.Z = -s.between(2, 4)
	// Time to reach the camera plane at unit speed.
	eta := b.Pos.Z / -c.Vel.Z
	c.Vel.X = (w/2 - b.Pos.X) / eta * s.between(0.5, 1)
	c.Vel.Y = (h/2 - b.Pos.Y) / eta * s.between(0.5, 1)

	c.TailLen = 15 + s.Rand.IntN(10)
	c.ClearTail()
}
