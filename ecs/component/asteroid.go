package component

import "image/color"

// Crater is a dark spot on an asteroid, in units of its radius.
type Crater struct {
	X, Y float64
	Size float64
}

type Asteroid struct {
	Base      color.NRGBA
	Highlight color.NRGBA
	Shadow    color.NRGBA
	// Outline is a closed polygon in units of the asteroid radius.
	Outline []Vec2
	Craters []Crater
}

type Vec2 struct {
	X, Y float64
}
