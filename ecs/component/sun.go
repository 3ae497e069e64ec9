package component

import "time"

type SunState uint8

const (
	SunStable SunState = iota
	SunSupernova
)

func (s SunState) String() string {
	if s == SunSupernova {
		return "supernova"
	}
	return "stable"
}

// Flare is one animated solar prominence, in units of the sun radius.
type Flare struct {
	Angle  float64
	Length float64
	Speed  float64
}

// Sun is the variant state of a KindSun body. A supernova sun is a husk that
// no longer moves, recycles or renders.
type Sun struct {
	Class      StarClass
	Size       float64
	FlarePhase float64
	Flares     []Flare

	WillExplode bool
	Remaining   time.Duration
	State       SunState
}
