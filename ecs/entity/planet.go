package entity

import (
	"image/color"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
)

var planetSchemes = [][]color.NRGBA{
	// desert
	{{0xe7, 0x6f, 0x51, 0xff}, {0xf4, 0xa2, 0x61, 0xff}, {0xe9, 0xc4, 0x6a, 0xff}},
	// earth-like
	{{0x26, 0x46, 0x53, 0xff}, {0x2a, 0x9d, 0x8f, 0xff}, {0x8a, 0xb1, 0x7d, 0xff}},
	// blue giant
	{{0x03, 0x04, 0x5e, 0xff}, {0x00, 0x77, 0xb6, 0xff}, {0x00, 0xb4, 0xd8, 0xff}, {0x90, 0xe0, 0xef, 0xff}},
	// gold giant
	{{0x58, 0x31, 0x01, 0xff}, {0x92, 0x6c, 0x15, 0xff}, {0xc3, 0xa3, 0x35, 0xff}, {0xeb, 0xd8, 0x88, 0xff}},
	// purple
	{{0x4c, 0x00, 0x70, 0xff}, {0x79, 0x01, 0x8c, 0xff}, {0xa2, 0x20, 0xb9, 0xff}, {0xc3, 0x55, 0xd4, 0xff}},
}

func (s *Spawner) NewPlanet() *component.Body {
	w, h := s.Viewport.Width, s.Viewport.Height
	p := &component.Planet{
		Bands:        planetSchemes[s.Rand.IntN(len(planetSchemes))],
		HasRings:     s.Rand.Float64() > 0.1,
		RingTilt:     s.angle(),
		BandRotation: s.angle(),
	}
	b := &component.Body{Kind: component.KindPlanet, Planet: p}
	b.Pos = common.Vec3{X: s.spread(w, 1), Y: s.spread(h, 1), Z: s.between(1.5*w, 2.5*w)}
	b.PrevZ = b.Pos.Z
	return b
}

func (s *Spawner) RecyclePlanet(b *component.Body) {
	w, h := s.Viewport.Width, s.Viewport.Height
	b.Pos = common.Vec3{X: s.spread(w, 1), Y: s.spread(h, 1), Z: 2.5 * w}
	b.PrevZ = b.Pos.Z
}
