package component

import "github.com/milk9111/starfield/common"

// Body is one celestial entity: a kind tag, a view-space position and the
// variant state for kinds that carry any. Exactly the variant matching Kind
// is non-nil; Star and Dust carry none.
type Body struct {
	Kind Kind
	Pos  common.Vec3
	// PrevZ is the depth before the most recent move, used for streaks.
	PrevZ float64

	Asteroid *Asteroid
	Planet   *Planet
	Ship     *Spaceship
	Comet    *Comet
	Sun      *Sun
	Nebula   *Nebula
}

// Depth orders bodies for painting and drives their projected size.
func (b *Body) Depth() float64 {
	return b.Pos.Z
}

// Dormant reports whether the body reached a terminal lifecycle state and
// only awaits removal.
func (b *Body) Dormant() bool {
	switch b.Kind {
	case KindSun:
		return b.Sun != nil && b.Sun.State == SunSupernova
	case KindNebula:
		return b.Nebula != nil && b.Nebula.State == NebulaIgniting
	}
	return false
}
