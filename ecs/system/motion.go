package system

import (
	"time"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/entity"
)

// Step carries what one update of one body needs.
type Step struct {
	Elapsed time.Duration
	Speed   float64
	Spawner *entity.Spawner
	Events  *ecs.EventQueue
}

// ms is the elapsed time in milliseconds. Rates are per millisecond.
func (st *Step) ms() float64 {
	return float64(st.Elapsed) / float64(time.Millisecond)
}

// Rate is how fast each kind approaches the camera relative to the shared
// speed. Comets carry their own velocity instead.
var Rate = [component.KindCount]float64{
	component.KindStar:      1.0,
	component.KindDust:      1.5,
	component.KindAsteroid:  0.5,
	component.KindPlanet:    0.2,
	component.KindSpaceship: 1.0,
	component.KindSun:       0.1,
	component.KindNebula:    0.05,
}

type updateFunc func(e ecs.Entry, st *Step)

var updaters = [component.KindCount]updateFunc{
	component.KindStar:      updateStar,
	component.KindDust:      updateDust,
	component.KindAsteroid:  updateAsteroid,
	component.KindPlanet:    updatePlanet,
	component.KindSpaceship: updateSpaceship,
	component.KindComet:     updateComet,
	component.KindSun:       updateSun,
	component.KindNebula:    updateNebula,
}

// Update advances one body by st. Lifecycle transitions are pushed to
// st.Events; nothing is added to or removed from the registry here.
func Update(e ecs.Entry, st *Step) {
	if e.Body == nil || !e.Body.Kind.Valid() {
		return
	}
	if fn := updaters[e.Body.Kind]; fn != nil {
		fn(e, st)
	}
}

// advance moves b toward the camera and reports whether it crossed the near
// plane.
func advance(b *component.Body, st *Step) bool {
	b.PrevZ = b.Pos.Z
	b.Pos.Z -= Rate[b.Kind] * st.Speed * st.ms()
	return b.Pos.Z <= common.NearPlane
}

func updateStar(e ecs.Entry, st *Step) {
	if advance(e.Body, st) {
		st.Spawner.RecycleStar(e.Body)
	}
}

func updateDust(e ecs.Entry, st *Step) {
	if advance(e.Body, st) {
		st.Spawner.RecycleDust(e.Body)
	}
}

func updateAsteroid(e ecs.Entry, st *Step) {
	if advance(e.Body, st) {
		st.Spawner.RecycleAsteroid(e.Body)
	}
}

func updatePlanet(e ecs.Entry, st *Step) {
	if advance(e.Body, st) {
		st.Spawner.RecyclePlanet(e.Body)
	}
}

func updateSpaceship(e ecs.Entry, st *Step) {
	b := e.Body
	if b.Ship != nil {
		b.Ship.LightPhase += st.ms() * 0.01
	}
	if advance(b, st) {
		st.Spawner.RecycleSpaceship(b)
	}
}

func updateComet(e ecs.Entry, st *Step) {
	b := e.Body
	c := b.Comet
	if c == nil {
		return
	}
	f := st.Speed * st.ms()
	b.PrevZ = b.Pos.Z
	b.Pos.X += c.Vel.X * f
	b.Pos.Y += c.Vel.Y * f
	b.Pos.Z += c.Vel.Z * f
	if b.Pos.Z <= common.NearPlane {
		st.Spawner.ResetComet(b)
		return
	}
	c.Push(b.Pos)
}
