package entity

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
)

// Classifier decides which class of sun a nebula of the given hue collapses
// into.
type Classifier func(hue float64) component.StarClass

// Spawner rolls fresh bodies and re-rolls recycled ones for one viewport.
type Spawner struct {
	Rand     *rand.Rand
	Viewport common.Viewport
	Classify Classifier
}

func NewSpawner(rng *rand.Rand, vp common.Viewport, classify Classifier) *Spawner {
	if classify == nil {
		classify = component.ClassForHue
	}
	return &Spawner{Rand: rng, Viewport: vp, Classify: classify}
}

// New creates a body of the given kind at a random starting position.
func (s *Spawner) New(kind component.Kind) *component.Body {
	switch kind {
	case component.KindStar:
		return s.NewStar()
	case component.KindDust:
		return s.NewDust()
	case component.KindAsteroid:
		return s.NewAsteroid()
	case component.KindPlanet:
		return s.NewPlanet()
	case component.KindSpaceship:
		return s.NewSpaceship()
	case component.KindComet:
		return s.NewComet()
	case component.KindSun:
		return s.NewSun()
	case component.KindNebula:
		return s.NewNebula()
	}
	return nil
}

// between returns a uniform value in [lo, hi).
func (s *Spawner) between(lo, hi float64) float64 {
	return lo + s.Rand.Float64()*(hi-lo)
}

// spread returns a uniform value in [-k*size, k*size).
func (s *Spawner) spread(size, k float64) float64 {
	return s.between(-k*size, k*size)
}

func (s *Spawner) angle() float64 {
	return s.Rand.Float64() * 2 * math.Pi
}

// near returns an initial depth in (NearPlane, far).
func (s *Spawner) near(far float64) float64 {
	if far <= common.NearPlane {
		return far
	}
	return math.Nextafter(common.NearPlane, far) + s.Rand.Float64()*(far-common.NearPlane)
}

// Recycle sends a body that reached the near plane back out according to
// its kind. Dormant bodies are left alone.
func (s *Spawner) Recycle(b *component.Body) {
	if b.Dormant() {
		return
	}
	switch b.Kind {
	case component.KindStar:
		s.RecycleStar(b)
	case component.KindDust:
		s.RecycleDust(b)
	case component.KindAsteroid:
		s.RecycleAsteroid(b)
	case component.KindPlanet:
		s.RecyclePlanet(b)
	case component.KindSpaceship:
		s.RecycleSpaceship(b)
	case component.KindComet:
		s.ResetComet(b)
	case component.KindSun:
		s.ResetSun(b)
	case component.KindNebula:
		s.RecycleNebula(b)
	}
}
