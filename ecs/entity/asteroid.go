package entity

import (
	"image/color"
	"math"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
)

var asteroidSchemes = [][3]color.NRGBA{
	{{0xA9, 0xA9, 0xA9, 0xFF}, {0xD3, 0xD3, 0xD3, 0xFF}, {0x69, 0x69, 0x69, 0xFF}},
	{{0x80, 0x80, 0x80, 0xFF}, {0xA9, 0xA9, 0xA9, 0xFF}, {0x40, 0x40, 0x40, 0xFF}},
	{{0x69, 0x69, 0x69, 0xFF}, {0x80, 0x80, 0x80, 0xFF}, {0x36, 0x36, 0x36, 0xFF}},
	{{0x8B, 0x45, 0x13, 0xFF}, {0xA0, 0x52, 0x2D, 0xFF}, {0x5C, 0x2E, 0x0D, 0xFF}},
	{{0xA0, 0x52, 0x2D, 0xFF}, {0xCD, 0x85, 0x3F, 0xFF}, {0x8B, 0x45, 0x13, 0xFF}},
}

func (s *Spawner) NewAsteroid() *component.Body {
	w, h := s.Viewport.Width, s.Viewport.Height
	scheme := asteroidSchemes[s.Rand.IntN(len(asteroidSchemes))]
	a := &component.Asteroid{
		Base:      scheme[0],
		Highlight: scheme[1],
		Shadow:    scheme[2],
	}

	vertices := 15 + s.Rand.IntN(10)
	a.Outline = make([]component.Vec2, vertices)
	for i := range a.Outline {
		theta := float64(i) / float64(vertices) * 2 * math.Pi
		r := s.between(0.6, 1.4)
		a.Outline[i] = component.Vec2{X: math.Cos(theta) * r, Y: math.Sin(theta) * r}
	}

	craters := 3 + s.Rand.IntN(5)
	a.Craters = make([]component.Crater, craters)
	for i := range a.Craters {
		theta := s.angle()
		r := s.Rand.Float64() * 0.6
		a.Craters[i] = component.Crater{
			X:    math.Cos(theta) * r,
			Y:    math.Sin(theta) * r,
			Size: s.between(0.1, 0.3),
		}
	}

	b := &component.Body{Kind: component.KindAsteroid, Asteroid: a}
	b.Pos = common.Vec3{X: s.spread(w, 0.5), Y: s.spread(h, 0.5), Z: s.near(w)}
	b.PrevZ = b.Pos.Z
	return b
}

// RecycleAsteroid keeps the rock's shape and colors.
func (s *Spawner) RecycleAsteroid(b *component.Body) {
	s.recycleBox(b, s.Viewport.Width)
}
