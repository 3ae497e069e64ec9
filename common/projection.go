package common

// NearPlane is the depth at or below which an entity has reached the camera
// and must be recycled or removed before it is projected.
const NearPlane = 1.0

// Vec3 is a point in view space: x/y lateral, z along the viewing axis.
type Vec3 struct {
	X, Y, Z float64
}

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float64
}

// Viewport is the drawing surface size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// Project maps a view-space point onto the viewport with perspective. It
// reports false for points at or behind the camera plane.
func Project(p Vec3, vp Viewport) (Point, bool) {
	if p.Z <= 0 {
		assertDepth(p.Z)
		return Point{}, false
	}
	halfW := vp.Width / 2
	halfH := vp.Height / 2
	return Point{
		X: p.X/p.Z*halfW + halfW,
		Y: p.Y/p.Z*halfH + halfH,
	}, true
}

// LinearScale is the floored depth-linear radius used by most kinds: it grows
// as z approaches the camera and never drops below floor.
func LinearScale(z, width, base, floor float64) float64 {
	if width <= 0 {
		return floor
	}
	r := (width - z) / width * base
	if r < floor {
		return floor
	}
	return r
}

// PerspectiveScale projects a world-space size at depth z into pixels.
func PerspectiveScale(size, z, width float64) float64 {
	if z <= 0 {
		assertDepth(z)
		return 0
	}
	return size / z * width / 2
}
