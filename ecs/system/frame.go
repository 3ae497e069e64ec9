package system

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/entity"
	"github.com/milk9111/starfield/ecs/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultMaxElapsed bounds how much time a single frame may simulate after a
// stall.
const DefaultMaxElapsed = 250 * time.Millisecond

// ErrInvalidViewport is returned when the driver is asked to fill a viewport
// without area.
var ErrInvalidViewport = entity.ErrInvalidViewport

// overlay is painted over the whole surface each frame instead of clearing
// it, which leaves fading trails behind moving bodies.
var overlay = color.NRGBA{A: 51}

type Options struct {
	Viewport   common.Viewport
	Counts     entity.Counts
	Speed      float64
	MaxElapsed time.Duration
	Rand       *rand.Rand
	Classify   entity.Classifier
	Logger     *zap.Logger
}

// FrameStats describes one frame.
type FrameStats struct {
	Frame   uint64
	Elapsed time.Duration
	Drawn   int
	Skipped int
	Spawned int
	Removed int
	Counts  [component.KindCount]int
}

func (s FrameStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("frame", s.Frame)
	enc.AddDuration("elapsed", s.Elapsed)
	enc.AddInt("drawn", s.Drawn)
	enc.AddInt("skipped", s.Skipped)
	enc.AddInt("spawned", s.Spawned)
	enc.AddInt("removed", s.Removed)
	for _, k := range component.Kinds() {
		enc.AddInt(k.String(), s.Counts[k])
	}
	return nil
}

// FrameDriver runs the simulation one frame at a time: it sorts the active
// bodies by depth, updates them, applies transmutations and paints them.
// It is not safe for concurrent use.
type FrameDriver struct {
	reg        *ecs.Registry
	spawner    *entity.Spawner
	events     ecs.EventQueue
	counts     entity.Counts
	speed      float64
	maxElapsed time.Duration
	logger     *zap.Logger

	running bool
	hasLast bool
	last    time.Time
	frame   uint64
	order   []ecs.Entry
}

// NewFrameDriver builds and populates a driver. The driver starts running.
func NewFrameDriver(opts Options) (*FrameDriver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	maxElapsed := opts.MaxElapsed
	if maxElapsed == 0 {
		maxElapsed = DefaultMaxElapsed
	}

	d := &FrameDriver{
		reg:        ecs.NewRegistry(),
		spawner:    entity.NewSpawner(rng, opts.Viewport, opts.Classify),
		counts:     opts.Counts,
		maxElapsed: maxElapsed,
		logger:     logger,
		running:    true,
	}
	d.SetSpeed(opts.Speed)

	if err := d.populate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *FrameDriver) populate() error {
	if err := entity.Populate(d.reg, d.counts, d.spawner); err != nil {
		return fmt.Errorf("frame driver: populate: %w", err)
	}
	d.order = nil
	d.logger.Info("populated",
		zap.Int("bodies", d.reg.Len()),
		zap.Float64("width", d.spawner.Viewport.Width),
		zap.Float64("height", d.spawner.Viewport.Height),
	)
	return nil
}

// Tick runs one full frame against s. A stopped driver does nothing.
func (d *FrameDriver) Tick(now time.Time, s render.Surface) FrameStats {
	if !d.running {
		return FrameStats{Frame: d.frame, Counts: d.reg.Counts()}
	}
	stats := d.Step(now)
	stats.Drawn, stats.Skipped = d.Render(s)
	if stats.Skipped > 0 {
		d.logger.Warn("bodies skipped at render", zap.Int("skipped", stats.Skipped), zap.Uint64("frame", stats.Frame))
	}
	return stats
}

// Step advances the simulation without drawing. The order it processed is
// kept for the next Render.
func (d *FrameDriver) Step(now time.Time) FrameStats {
	if !d.running {
		return FrameStats{Frame: d.frame, Counts: d.reg.Counts()}
	}
	elapsed := d.elapsed(now)
	d.frame++

	d.order = d.reg.AllActive()
	SortByDepth(d.order)

	st := Step{
		Elapsed: elapsed,
		Speed:   d.speed,
		Spawner: d.spawner,
		Events:  &d.events,
	}
	for _, e := range d.order {
		Update(e, &st)
	}

	spawned := Transmute(d.reg, d.spawner, d.events.Drain(), d.logger)
	applied := d.reg.Apply()

	return FrameStats{
		Frame:   d.frame,
		Elapsed: elapsed,
		Spawned: spawned,
		Removed: applied.Removed,
		Counts:  d.reg.Counts(),
	}
}

func (d *FrameDriver) elapsed(now time.Time) time.Duration {
	if !d.hasLast {
		d.hasLast = true
		d.last = now
		return 0
	}
	dt := now.Sub(d.last)
	d.last = now
	if dt < 0 {
		return 0
	}
	if d.maxElapsed > 0 && dt > d.maxElapsed {
		return d.maxElapsed
	}
	return dt
}

// Render paints the overlay and the bodies of the last step.
func (d *FrameDriver) Render(s render.Surface) (drawn, skipped int) {
	vp := d.spawner.Viewport
	s.FillRect(0, 0, vp.Width, vp.Height, overlay)
	return Paint(s, d.order, vp)
}

// Stop pauses the driver. Elapsed time while stopped is not simulated.
func (d *FrameDriver) Stop() {
	d.running = false
}

func (d *FrameDriver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.hasLast = false
}

func (d *FrameDriver) Running() bool {
	return d.running
}

// SetSpeed sets the shared speed scalar. Negative values are treated as 0.
func (d *FrameDriver) SetSpeed(v float64) {
	d.speed = max(v, 0)
}

func (d *FrameDriver) Speed() float64 {
	return d.speed
}

func (d *FrameDriver) Viewport() common.Viewport {
	return d.spawner.Viewport
}

// Resize re-populates the field for vp. On error the previous population
// and viewport stay in place.
func (d *FrameDriver) Resize(vp common.Viewport) error {
	prev := d.spawner.Viewport
	d.spawner.Viewport = vp
	if err := d.populate(); err != nil {
		d.spawner.Viewport = prev
		return err
	}
	return nil
}

// Reconfigure re-populates the field with new counts. On error the previous
// population stays in place.
func (d *FrameDriver) Reconfigure(counts entity.Counts) error {
	prev := d.counts
	d.counts = counts
	if err := d.populate(); err != nil {
		d.counts = prev
		return err
	}
	return nil
}

// SetClassifier replaces the classifier used for nebulae created from now
// on. Existing nebulae keep their hint.
func (d *FrameDriver) SetClassifier(c entity.Classifier) {
	if c == nil {
		c = component.ClassForHue
	}
	d.spawner.Classify = c
}

func (d *FrameDriver) Counts() [component.KindCount]int {
	return d.reg.Counts()
}

func (d *FrameDriver) Count(kind component.Kind) int {
	return d.reg.Count(kind)
}

func (d *FrameDriver) Registry() *ecs.Registry {
	return d.reg
}

func (d *FrameDriver) Spawner() *entity.Spawner {
	return d.spawner
}
