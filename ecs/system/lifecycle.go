package system

import (
	"github.com/milk9111/starfield/ecs"
	"github.com/milk9111/starfield/ecs/component"
)

// updateSun moves a stable sun and counts down its life. A sun that reaches
// the near plane is re-rolled instead of exploding, so a supernova always
// happens in front of the camera.
func updateSun(e ecs.Entry, st *Step) {
	b := e.Body
	sun := b.Sun
	if sun == nil || sun.State == component.SunSupernova {
		return
	}

	sun.FlarePhase += st.ms() * 0.05
	if advance(b, st) {
		st.Spawner.ResetSun(b)
		return
	}

	sun.Remaining -= st.Elapsed
	if sun.WillExplode && sun.Remaining <= 0 {
		sun.State = component.SunSupernova
		st.Events.Push(ecs.Event{
			Kind: ecs.EventSpawnNebula,
			From: e.Entity,
			Pos:  b.Pos,
		})
	}
}

// updateNebula moves a gaseous nebula and runs its pulses. Every pulse that
// runs out restarts and counts as an ignition; enough ignitions collapse the
// nebula into a sun of its hint class.
func updateNebula(e ecs.Entry, st *Step) {
	b := e.Body
	n := b.Nebula
	if n == nil || n.State == component.NebulaIgniting {
		return
	}

	if advance(b, st) {
		st.Spawner.RecycleNebula(b)
		return
	}

	for i := range n.Pulses {
		p := &n.Pulses[i]
		p.Left -= st.Elapsed
		if p.Left <= 0 {
			p.Left = p.Period
			n.IgnitionsSeen++
		}
	}

	if n.IgnitionsSeen >= n.IgnitionsRequired {
		n.State = component.NebulaIgniting
		st.Events.Push(ecs.Event{
			Kind:  ecs.EventSpawnSun,
			From:  e.Entity,
			Pos:   b.Pos,
			Class: n.Hint,
		})
	}
}
