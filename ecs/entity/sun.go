package entity

import (
	"time"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
)

const (
	sunLifetimeMin    = 15 * time.Second
	sunLifetimeSpread = 10 * time.Second
)

// NewSun creates a stable sun of random class somewhere far out.
func (s *Spawner) NewSun() *component.Body {
	b := &component.Body{Kind: component.KindSun, Sun: &component.Sun{}}
	s.ResetSun(b)
	return b
}

// NewSunAt creates the sun an ignited nebula collapses into. It keeps the
// nebula's position and takes the class the nebula was hinting at.
func (s *Spawner) NewSunAt(pos common.Vec3, class component.StarClass) *component.Body {
	b := s.NewSun()
	b.Sun.Class = class
	b.Pos = pos
	b.PrevZ = pos.Z
	return b
}

// ResetSun re-rolls everything about a sun: position, class, flares,
// lifetime and whether it will go supernova.
func (s *Spawner) ResetSun(b *component.Body) {
	w, h := s.Viewport.Width, s.Viewport.Height
	sun := b.Sun
	if sun == nil {
		sun = &component.Sun{}
		b.Sun = sun
	}

	b.Pos = common.Vec3{X: s.spread(w, 1.5), Y: s.spread(h, 1.5), Z: s.between(3*w, 4*w)}
	b.PrevZ = b.Pos.Z

	sun.Class = component.StarClass(s.Rand.IntN(int(component.StarClassCount)))
	sun.Size = s.between(0.7, 1.3)
	sun.FlarePhase = s.Rand.Float64() * 100
	sun.WillExplode = s.Rand.Float64() > 0.5
	sun.Remaining = sunLifetimeMin + time.Duration(s.Rand.Float64()*float64(sunLifetimeSpread))
	sun.State = component.SunStable

	n := 5 + s.Rand.IntN(5)
	sun.Flares = sun.Flares[:0]
	for range n {
		sun.Flares = append(sun.Flares, component.Flare{
			Angle:  s.angle(),
			Length: s.between(0.5, 2),
			Speed:  s.between(0.1, 0.3),
		})
	}
}
