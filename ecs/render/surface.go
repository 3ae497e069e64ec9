package render

import (
	"image/color"

	"github.com/milk9111/starfield/common"
)

// Stop is one color stop of a gradient. Offset runs from 0 at the start of
// the gradient to 1 at its end.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Surface is the drawing target painters write to. Coordinates are screen
// pixels with the origin at the top left. Implementations decide how
// faithfully each primitive is rendered.
type Surface interface {
	Size() (w, h float64)

	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	// FillEllipse fills an ellipse rotated by rot radians around its center.
	FillEllipse(cx, cy, rx, ry, rot float64, c color.NRGBA)
	FillPolygon(xs, ys []float64, c color.NRGBA)

	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	// StrokeArc strokes the part of an ellipse between angles a0 and a1.
	StrokeArc(cx, cy, rx, ry, rot, a0, a1, width float64, c color.NRGBA)

	// FillRadial fills a disc of radius r1 around (cx, cy) with a radial
	// gradient whose stops run from r0 to r1.
	FillRadial(cx, cy, r0, r1 float64, stops []Stop)
	// StrokeLinear strokes a line whose color follows stops from (x0, y0)
	// to (x1, y1).
	StrokeLinear(x0, y0, x1, y1, width float64, stops []Stop)
}

// WithAlpha returns c with its alpha scaled by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a <= 0 {
		c.A = 0
		return c
	}
	if a >= 1 {
		return c
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// At returns the color of stops at offset t, interpolating between the
// neighboring stops.
func At(stops []Stop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		f := (t - lo.Offset) / span
		return color.NRGBA{
			R: mix(lo.Color.R, hi.Color.R, f),
			G: mix(lo.Color.G, hi.Color.G, f),
			B: mix(lo.Color.B, hi.Color.B, f),
			A: mix(lo.Color.A, hi.Color.A, f),
		}
	}
	return stops[len(stops)-1].Color
}

func mix(a, b uint8, f float64) uint8 {
	return uint8(common.Lerp(float64(a), float64(b), f) + 0.5)
}
