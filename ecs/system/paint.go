package system

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/render"
	"golang.org/x/image/colornames"
)

var (
	transparent = color.NRGBA{}
	white       = nrgba(colornames.White, 1)
	ringColor   = color.NRGBA{220, 220, 220, 153}
	tailColor   = color.NRGBA{180, 220, 255, 255}
	lightColor  = color.NRGBA{255, 100, 100, 255}
	hullColor   = color.NRGBA{0xb0, 0xb0, 0xc0, 0xff}
	ghostColors = []color.NRGBA{
		{100, 255, 100, 26},
		{100, 100, 255, 26},
		{255, 100, 100, 26},
	}
)

func nrgba(c color.RGBA, alpha float64) color.NRGBA {
	return render.WithAlpha(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, alpha)
}

func fade(c color.NRGBA) color.NRGBA {
	c.A = 0
	return c
}

func hsl(hue, l, alpha float64) color.NRGBA {
	r, g, b := colorful.Hsl(common.Wrap360(hue), 1, l).Clamped().RGB255()
	return render.WithAlpha(color.NRGBA{R: r, G: g, B: b, A: 255}, alpha)
}

func prevPoint(b *component.Body, vp common.Viewport) (common.Point, bool) {
	return common.Project(common.Vec3{X: b.Pos.X, Y: b.Pos.Y, Z: b.PrevZ}, vp)
}

func paintStar(s render.Surface, b *component.Body, vp common.Viewport) bool {
	p, ok := common.Project(b.Pos, vp)
	if !ok {
		return false
	}
	r := common.LinearScale(b.Pos.Z, vp.Width, 2.5, 1)
	s.FillCircle(p.X, p.Y, r, white)
	if pp, ok := prevPoint(b, vp); ok {
		s.StrokeLine(pp.X, pp.Y, p.X, p.Y, r, render.WithAlpha(white, 0.5))
	}
	return true
}

func paintDust(s render.Surface, b *component.Body, vp common.Viewport) bool {
	p, ok := common.Project(b.Pos, vp)
	if !ok {
		return false
	}
	r := common.LinearScale(b.Pos.Z, vp.Width, 0.7, 0.1)
	pp, ok := prevPoint(b, vp)
	if !ok {
		pp = p
	}
	s.StrokeLine(pp.X, pp.Y, p.X, p.Y, r, color.NRGBA{200, 200, 200, 51})
	return true
}

func paintAsteroid(s render.Surface, b *component.Body, vp common.Viewport) bool {
	p, ok := common.Project(b.Pos, vp)
	if !ok {
		return false
	}
	a := b.Asteroid
	if a == nil || len(a.Outline) < 3 {
		return true
	}
	r := common.LinearScale(b.Pos.Z, vp.Width, 15, 2)

	xs := make([]float64, len(a.Outline))
	ys := make([]float64, len(a.Outline))
	for i, v := range a.Outline {
		xs[i] = p.X + v.X*r
		ys[i] = p.Y + v.Y*r
	}
	s.FillPolygon(xs, ys, a.Base)
	s.FillRadial(p.X, p.Y, r*0.1, r*0.6, []render.Stop{
		{Offset: 0, Color: render.WithAlpha(a.Highlight, 0.8)},
		{Offset: 1, Color: fade(a.Highlight)},
	})

	if r > 5 {
		for _, c := range a.Craters {
			s.FillCircle(p.X+c.X*r, p.Y+c.Y*r, c.Size*r, a.Shadow)
		}
	}
	return true
}

func paintPlanet(s render.Surface, b *component.Body, vp common.Viewport) bool {
	p, ok := common.Project(b.Pos, vp)
	if !ok {
		return false
	}
	pl := b.Planet
	if pl == nil {
		return true
	}
	r := common.LinearScale(b.Pos.Z, vp.Width, 50, 10)
	rings := pl.HasRings && r > 15

	if rings {
		paintRings(s, p, r, pl.RingTilt, math.Pi, 2*math.Pi)
	}
	paintBands(s, p, r, pl)
	s.FillRadial(p.X, p.Y, r*0.7, r, []render.Stop{
		{Offset: 0, Color: transparent},
		{Offset: 1, Color: color.NRGBA{A: 128}},
	})
	if rings {
		paintRings(s, p, r, pl.RingTilt, 0, math.Pi)
	}
	return true
}

// paintRings strokes one half of the three ring ellipses. The half from pi
// to 2pi is behind the planet.
func paintRings(s render.Surface, p common.Point, r, tilt, a0, a1 float64) {
	for i := range 3 {
		rx := r * (1.6 + float64(i)*0.15)
		ry := r * (0.5 + float64(i)*0.05)
		s.StrokeArc(p.X, p.Y, rx, ry, tilt, a0, a1, 1.5, ringColor)
	}
}

// paintBands fills the planet disc as slices across the band direction,
// each slice taking the band color at its middle.
func paintBands(s render.Surface, p common.Point, r float64, pl *component.Planet) {
	if len(pl.Bands) == 0 {
		return
	}
	stops := make([]render.Stop, len(pl.Bands))
	for i, c := range pl.Bands {
		off := 0.0
		if len(pl.Bands) > 1 {
			off = float64(i) / float64(len(pl.Bands)-1)
		}
		stops[i] = render.Stop{Offset: off, Color: c}
	}

	const slices = 12
	const samples = 4
	dx, dy := math.Cos(pl.BandRotation), math.Sin(pl.BandRotation)
	nx, ny := -dy, dx

	xs := make([]float64, 0, 2*(samples+1))
	ys := make([]float64, 0, 2*(samples+1))
	for k := range slices {
		t0 := -1 + 2*float64(k)/slices
		t1 := t0 + 2.0/slices
		xs, ys = xs[:0], ys[:0]
		for j := 0; j <= samples; j++ {
			t := t0 + (t1-t0)*float64(j)/samples
			h := math.Sqrt(math.Max(0, 1-t*t))
			xs = append(xs, p.X+r*(dx*t+nx*h))
			ys = append(ys, p.Y+r*(dy*t+ny*h))
		}
		for j := samples; j >= 0; j-- {
			t := t0 + (t1-t0)*float64(j)/samples
			h := math.Sqrt(math.Max(0, 1-t*t))
			xs = append(xs, p.X+r*(dx*t-nx*h))
			ys = append(ys, p.Y+r*(dy*t-ny*h))
		}
		s.FillPolygon(xs, ys, render.At(stops, (t0+t1)/4+0.5))
	}
}

func paintSpaceship(s render.Surface, b *component.Body, vp common.Viewport) bool {
	p, ok := common.Project(b.Pos, vp)
	if !ok {
		return false
	}
	ship := b.Ship
	if ship == nil {
		return true
	}
	r := common.LinearScale(b.Pos.Z, vp.Width, 7, 0.1)

	switch ship.Design {
	case component.DesignStreak:
		paintStreakShip(s, b, p, r, vp)
	case component.DesignFighter:
		paintFighter(s, p, r)
	case component.DesignUFO:
		paintUFO(s, p, r, ship.LightPhase)
	}
	return true
}

func paintStreakShip(s render.Surface, b *component.Body, p common.Point, r float64, vp common.Viewport) {
	if pp, ok := prevPoint(b, vp); ok {
		s.StrokeLinear(pp.X, pp.Y, p.X, p.Y, r*2, []render.Stop{
			{Offset: 0, Color: color.NRGBA{255, 100, 50, 0}},
			{Offset: 1, Color: color.NRGBA{255, 200, 150, 191}},
		})
	}
	s.FillRadial(p.X, p.Y, 0, r, []render.Stop{
		{Offset: 0, Color: white},
		{Offset: 0.8, Color: color.NRGBA{255, 200, 150, 204}},
		{Offset: 1, Color: color.NRGBA{255, 100, 50, 0}},
	})
}

func paintFighter(s render.Surface, p common.Point, r float64) {
	if r < 1 {
		return
	}
	nose := common.Point{X: p.X, Y: p.Y - r*1.5}
	left := common.Point{X: p.X - r, Y: p.Y + r*2}
	right := common.Point{X: p.X + r, Y: p.Y + r*2}

	var xs, ys []float64
	appendQuad := func(from, ctrl, to common.Point) {
		const n = 8
		for i := 0; i <= n; i++ {
			t := float64(i) / n
			u := 1 - t
			xs = append(xs, u*u*from.X+2*u*t*ctrl.X+t*t*to.X)
			ys = append(ys, u*u*from.Y+2*u*t*ctrl.Y+t*t*to.Y)
		}
	}
	appendQuad(nose, common.Point{X: p.X - r, Y: p.Y}, left)
	appendQuad(right, common.Point{X: p.X + r, Y: p.Y}, nose)
	s.FillPolygon(xs, ys, hullColor)

	s.StrokeLinear(p.X, nose.Y, p.X, left.Y, r*0.5, []render.Stop{
		{Offset: 0, Color: color.NRGBA{0xe0, 0xe0, 0xf0, 0xff}},
		{Offset: 1, Color: color.NRGBA{0x80, 0x80, 0x90, 0x00}},
	})
	s.FillRadial(p.X, p.Y+r*1.5, r*0.2, r, []render.Stop{
		{Offset: 0, Color: color.NRGBA{255, 220, 180, 255}},
		{Offset: 1, Color: color.NRGBA{255, 100, 50, 0}},
	})
}

func paintUFO(s render.Surface, p common.Point, r, phase float64) {
	if r < 1 {
		return
	}
	s.FillEllipse(p.X, p.Y, r*2, r*0.7, 0, color.NRGBA{0x40, 0x40, 0x50, 0xff})
	s.FillEllipse(p.X, p.Y, r*1.6, r*0.55, 0, color.NRGBA{0x70, 0x70, 0x80, 0xff})
	s.FillEllipse(p.X, p.Y, r*0.9, r*0.3, 0, color.NRGBA{0xd0, 0xd0, 0xd8, 0xff})

	// Upper half disc for the cockpit dome.
	const n = 12
	cx, cy, dr := p.X, p.Y-r*0.3, r*0.8
	xs := make([]float64, 0, n+1)
	ys := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		a := math.Pi + math.Pi*float64(i)/n
		xs = append(xs, cx+math.Cos(a)*dr)
		ys = append(ys, cy+math.Sin(a)*dr)
	}
	s.FillPolygon(xs, ys, color.NRGBA{140, 185, 228, 153})

	const lights = 5
	for i := range lights {
		a := float64(i)/lights*2*math.Pi + phase
		if math.Cos(a+math.Pi/2) <= 0 {
			continue
		}
		intensity := 0.5 + math.Sin(a*5+phase*10)*0.5
		s.FillCircle(p.X+math.Cos(a)*r*1.8, p.Y+math.Sin(a)*r*0.6, r*0.2, render.WithAlpha(lightColor, intensity))
	}
}

func paintComet(s render.Surface, b *component.Body, vp common.Viewport) bool {
	p, ok := common.Project(b.Pos, vp)
	if !ok {
		return false
	}
	if c := b.Comet; c != nil {
		tail := c.Tail()
		for i, pt := range tail {
			tp, ok := common.Project(pt, vp)
			if !ok {
				continue
			}
			f := float64(i) / float64(len(tail))
			pr := common.LinearScale(pt.Z, vp.Width, 4, 0.1)
			if size := f * pr; size > 0 {
				s.FillCircle(tp.X, tp.Y, size, render.WithAlpha(tailColor, f*0.5))
			}
		}
	}

	r := common.LinearScale(b.Pos.Z, vp.Width, 4, 0.1)
	if r > 0.5 {
		s.FillRadial(p.X, p.Y, 0, r, []render.Stop{
			{Offset: 0, Color: white},
			{Offset: 0.8, Color: color.NRGBA{200, 220, 255, 204}},
			{Offset: 1, Color: fade(tailColor)},
		})
	}
	return true
}

func paintSun(s render.Surface, b *component.Body, vp common.Viewport) bool {
	p, ok := common.Project(b.Pos, vp)
	if !ok {
		return false
	}
	sun := b.Sun
	if sun == nil {
		return true
	}
	pal := sun.Class.Palette()
	r := common.LinearScale(b.Pos.Z, vp.Width, 80, 20) * sun.Size

	s.FillRadial(p.X, p.Y, r, r*3, []render.Stop{{Offset: 0, Color: pal.Corona2}, {Offset: 1, Color: transparent}})
	s.FillRadial(p.X, p.Y, r, r*1.5, []render.Stop{{Offset: 0, Color: pal.Corona1}, {Offset: 1, Color: transparent}})
	s.FillRadial(p.X, p.Y, 0, r, []render.Stop{
		{Offset: 0, Color: white},
		{Offset: 0.1, Color: pal.Core},
		{Offset: 1, Color: pal.Corona1},
	})

	if r > 50 {
		for _, f := range sun.Flares {
			a := f.Angle + sun.FlarePhase*f.Speed
			l := r * f.Length * (0.8 + math.Sin(sun.FlarePhase*f.Speed)*0.2)
			cos, sin := math.Cos(a), math.Sin(a)
			width := 3 + math.Sin(sun.FlarePhase*f.Speed*7)
			s.StrokeLinear(p.X+cos*r, p.Y+sin*r, p.X+cos*(r+l), p.Y+sin*(r+l), width, []render.Stop{
				{Offset: 0, Color: pal.Flare},
				{Offset: 1, Color: transparent},
			})
		}
	}

	if r > 60 {
		paintLensFlare(s, p, r, vp)
	}
	return true
}

// paintLensFlare draws ghosts mirrored through the screen center plus a
// wide glare.
func paintLensFlare(s render.Surface, p common.Point, r float64, vp common.Viewport) {
	c := vp.Center()
	vx, vy := c.X-p.X, c.Y-p.Y
	if dist := math.Hypot(vx, vy); dist > 0 {
		for i := 1; i <= 4; i++ {
			size := r * (0.4 - float64(i)*0.08)
			if size <= 0 {
				continue
			}
			k := float64(i) * 0.4
			s.FillCircle(p.X-vx*k, p.Y-vy*k, size, ghostColors[i%len(ghostColors)])
		}
	}
	s.FillRadial(p.X, p.Y, r, r*4, []render.Stop{
		{Offset: 0, Color: render.WithAlpha(white, 0.05)},
		{Offset: 1, Color: transparent},
	})
}

func paintNebula(s render.Surface, b *component.Body, vp common.Viewport) bool {
	p, ok := common.Project(b.Pos, vp)
	if !ok {
		return false
	}
	n := b.Nebula
	if n == nil {
		return true
	}
	z := b.Pos.Z
	cloud := hsl(n.Hue, 0.5, 0.05)

	for _, pt := range n.Particles {
		r := common.PerspectiveScale(pt.Radius, z, vp.Width)
		if r <= 1 {
			continue
		}
		px := p.X + pt.OffsetX/z*vp.Width/2
		py := p.Y + pt.OffsetY/z*vp.Height/2
		s.FillRadial(px, py, 0, r, []render.Stop{{Offset: 0, Color: cloud}, {Offset: 1, Color: transparent}})
	}

	if common.PerspectiveScale(vp.Width, z, vp.Width) <= 50 {
		return true
	}
	for _, pulse := range n.Pulses {
		f := math.Sin(pulse.Progress() * math.Pi)
		r := common.PerspectiveScale(100, z, vp.Width) * f
		if r <= 1 {
			continue
		}
		px := p.X + pulse.OffsetX/z*vp.Width/2
		py := p.Y + pulse.OffsetY/z*vp.Height/2
		s.FillRadial(px, py, 0, r, []render.Stop{
			{Offset: 0, Color: hsl(n.Hue, 0.7, f*0.5)},
			{Offset: 1, Color: transparent},
		})
	}
	return true
}
