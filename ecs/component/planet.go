package component

import "image/color"

type Planet struct {
	Bands        []color.NRGBA
	HasRings     bool
	RingTilt     float64
	BandRotation float64
}
