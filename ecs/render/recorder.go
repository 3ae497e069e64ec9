package render

import "image/color"

type Op uint8

const (
	OpFillRect Op = iota
	OpFillCircle
	OpFillEllipse
	OpFillPolygon
	OpStrokeLine
	OpStrokeArc
	OpFillRadial
	OpStrokeLinear
)

var opNames = [...]string{
	"fill_rect", "fill_circle", "fill_ellipse", "fill_polygon",
	"stroke_line", "stroke_arc", "fill_radial", "stroke_linear",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Call is one recorded primitive. Args holds the numeric arguments in the
// order the Surface method takes them.
type Call struct {
	Op    Op
	Args  []float64
	Color color.NRGBA
	Stops []Stop
}

// Recorder is a Surface that records every call instead of drawing.
type Recorder struct {
	W, H  float64
	Calls []Call
	// Discard counts calls without keeping them.
	Discard bool
	counts  [len(opNames)]int
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Count returns how many calls of op were made since the last Reset.
func (r *Recorder) Count(op Op) int {
	if int(op) >= len(r.counts) {
		return 0
	}
	return r.counts[op]
}

func (r *Recorder) Total() int {
	n := 0
	for _, c := range r.counts {
		n += c
	}
	return n
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.counts = [len(opNames)]int{}
}

func (r *Recorder) record(op Op, c color.NRGBA, stops []Stop, args ...float64) {
	r.counts[op]++
	if r.Discard {
		return
	}
	var kept []Stop
	if stops != nil {
		kept = append([]Stop(nil), stops...)
	}
	r.Calls = append(r.Calls, Call{Op: op, Args: args, Color: c, Stops: kept})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.record(OpFillRect, c, nil, x, y, w, h)
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.record(OpFillCircle, c, nil, cx, cy, rad)
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry, rot float64, c color.NRGBA) {
	r.record(OpFillEllipse, c, nil, cx, cy, rx, ry, rot)
}

func (r *Recorder) FillPolygon(xs, ys []float64, c color.NRGBA) {
	args := make([]float64, 0, 2*len(xs))
	for i := range xs {
		if i < len(ys) {
			args = append(args, xs[i], ys[i])
		}
	}
	r.record(OpFillPolygon, c, nil, args...)
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.record(OpStrokeLine, c, nil, x0, y0, x1, y1, width)
}

func (r *Recorder) StrokeArc(cx, cy, rx, ry, rot, a0, a1, width float64, c color.NRGBA) {
	r.record(OpStrokeArc, c, nil, cx, cy, rx, ry, rot, a0, a1, width)
}

func (r *Recorder) FillRadial(cx, cy, r0, r1 float64, stops []Stop) {
	r.record(OpFillRadial, color.NRGBA{}, stops, cx, cy, r0, r1)
}

func (r *Recorder) StrokeLinear(x0, y0, x1, y1, width float64, stops []Stop) {
	r.record(OpStrokeLinear, color.NRGBA{}, stops, x0, y0, x1, y1, width)
}
