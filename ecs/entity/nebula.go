package entity

import (
	"math"
	"time"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
)

const (
	nebulaParticles = 150
	nebulaPulses    = 5
)

// NewNebula creates a gaseous nebula far out. Its hint class is decided here,
// once, from its hue.
func (s *Spawner) NewNebula() *component.Body {
	w, h := s.Viewport.Width, s.Viewport.Height
	hue := s.Rand.Float64() * 360
	n := &component.Nebula{
		Hue:               hue,
		Hint:              s.Classify(hue),
		IgnitionsRequired: 5 + s.Rand.IntN(5),
		State:             component.NebulaGaseous,
	}

	n.Particles = make([]component.Particle, nebulaParticles)
	for i := range n.Particles {
		theta := s.angle()
		// Squared uniform pulls the cloud toward its center.
		r := s.Rand.Float64() * s.Rand.Float64() * w * 1.5
		n.Particles[i] = component.Particle{
			OffsetX: math.Cos(theta) * r,
			OffsetY: math.Sin(theta) * r,
			Radius:  s.between(150, 350),
		}
	}

	n.Pulses = make([]component.Pulse, nebulaPulses)
	for i := range n.Pulses {
		n.Pulses[i] = component.Pulse{
			OffsetX: (s.Rand.Float64() - 0.5) * w,
			OffsetY: (s.Rand.Float64() - 0.5) * h,
			Left:    time.Duration(s.Rand.Float64() * float64(3*time.Second)),
			Period:  2*time.Second + time.Duration(s.Rand.Float64()*float64(2*time.Second)),
		}
	}

	b := &component.Body{Kind: component.KindNebula, Nebula: n}
	s.RecycleNebula(b)
	b.Pos.Z = s.between(5*w, 7*w)
	b.PrevZ = b.Pos.Z
	return b
}

// NewNebulaAt creates the nebula a supernova leaves behind at pos.
func (s *Spawner) NewNebulaAt(pos common.Vec3) *component.Body {
	b := s.NewNebula()
	b.Pos = pos
	b.PrevZ = pos.Z
	return b
}

// RecycleNebula moves a gaseous nebula back out. The cloud itself, its hue
// and its ignition progress are kept.
func (s *Spawner) RecycleNebula(b *component.Body) {
	w, h := s.Viewport.Width, s.Viewport.Height
	b.Pos = common.Vec3{X: s.spread(w, 2), Y: s.spread(h, 2), Z: s.between(5*w, 7*w)}
	b.PrevZ = b.Pos.Z
}
