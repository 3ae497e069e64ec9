package component

import "time"

type NebulaState uint8

const (
	NebulaGaseous NebulaState = iota
	NebulaIgniting
)

func (s NebulaState) String() string {
	if s == NebulaIgniting {
		return "igniting"
	}
	return "gaseous"
}

// Particle is one soft blob of the cloud, offset from the nebula center in
// world units.
type Particle struct {
	OffsetX, OffsetY float64
	Radius           float64
}

// Pulse is a cyclic ignition burst. Each time Left runs out it restarts from
// Period and counts as one ignition.
type Pulse struct {
	OffsetX, OffsetY float64
	Left             time.Duration
	Period           time.Duration
}

// Progress is how far through its current cycle the pulse is, in [0, 1].
func (p Pulse) Progress() float64 {
	if p.Period <= 0 {
		return 1
	}
	f := 1 - float64(p.Left)/float64(p.Period)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Nebula is the variant state of a KindNebula body.
type Nebula struct {
	Hue       float64
	Hint      StarClass
	Particles []Particle
	Pulses    []Pulse

	IgnitionsRequired int
	IgnitionsSeen     int
	State             NebulaState
}
