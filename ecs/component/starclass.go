package component

import (
	"fmt"
	"image/color"
	"strings"
)

// StarClass is the spectral class of a Sun.
type StarClass uint8

const (
	ClassO StarClass = iota // blue
	ClassA                  // white
	ClassG                  // yellow
	ClassK                  // orange
	ClassM                  // red

	StarClassCount
)

var classNames = [StarClassCount]string{"O", "A", "G", "K", "M"}

func (c StarClass) String() string {
	if c >= StarClassCount {
		return fmt.Sprintf("class(%d)", uint8(c))
	}
	return classNames[c]
}

func ParseStarClass(s string) (StarClass, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range classNames {
		if n == name {
			return StarClass(i), nil
		}
	}
	return 0, fmt.Errorf("component: unknown star class %q", s)
}

// Palette holds the colors a Sun of a given class is drawn with.
type Palette struct {
	Core    color.NRGBA
	Corona1 color.NRGBA
	Corona2 color.NRGBA
	Flare   color.NRGBA
}

var palettes = [StarClassCount]Palette{
	ClassO: {
		Core:    color.NRGBA{200, 220, 255, 255},
		Corona1: color.NRGBA{100, 180, 255, 64},
		Corona2: color.NRGBA{50, 100, 255, 38},
		Flare:   color.NRGBA{170, 210, 255, 128},
	},
	ClassA: {
		Core:    color.NRGBA{255, 255, 255, 255},
		Corona1: color.NRGBA{220, 230, 255, 64},
		Corona2: color.NRGBA{200, 210, 255, 38},
		Flare:   color.NRGBA{240, 240, 255, 128},
	},
	ClassG: {
		Core:    color.NRGBA{255, 255, 220, 255},
		Corona1: color.NRGBA{255, 204, 0, 51},
		Corona2: color.NRGBA{255, 100, 0, 26},
		Flare:   color.NRGBA{255, 204, 0, 128},
	},
	ClassK: {
		Core:    color.NRGBA{255, 200, 180, 255},
		Corona1: color.NRGBA{255, 150, 50, 51},
		Corona2: color.NRGBA{255, 100, 0, 26},
		Flare:   color.NRGBA{255, 150, 50, 128},
	},
	ClassM: {
		Core:    color.NRGBA{255, 180, 150, 255},
		Corona1: color.NRGBA{255, 100, 50, 51},
		Corona2: color.NRGBA{220, 20, 0, 26},
		Flare:   color.NRGBA{255, 100, 50, 128},
	},
}

func (c StarClass) Palette() Palette {
	if c >= StarClassCount {
		return palettes[ClassA]
	}
	return palettes[c]
}

// ClassForHue maps a nebula hue in degrees to the class of the sun it
// collapses into. The ranges are half-open and cover the whole circle.
func ClassForHue(hue float64) StarClass {
	switch {
	case hue >= 41 && hue < 66:
		return ClassK
	case hue >= 66 && hue < 76:
		return ClassG
	case hue >= 76 && hue < 191:
		return ClassA
	case hue >= 191 && hue < 281:
		return ClassO
	default:
		return ClassM
	}
}
