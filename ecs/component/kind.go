package component

import (
	"fmt"
	"strings"
)

// Kind tags the variant a Body carries. It is fixed at creation.
type Kind uint8

const (
	KindStar Kind = iota
	KindDust
	KindAsteroid
	KindPlanet
	KindSpaceship
	KindComet
	KindSun
	KindNebula

	KindCount
)

var kindNames = [KindCount]string{
	KindStar:      "star",
	KindDust:      "dust",
	KindAsteroid:  "asteroid",
	KindPlanet:    "planet",
	KindSpaceship: "spaceship",
	KindComet:     "comet",
	KindSun:       "sun",
	KindNebula:    "nebula",
}

func (k Kind) String() string {
	if k >= KindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

func (k Kind) Valid() bool {
	return k < KindCount
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		out = append(out, k)
	}
	return out
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("component: unknown kind %q", s)
}
