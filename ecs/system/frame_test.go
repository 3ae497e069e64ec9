package system

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/entity"
	"github.com/milk9111/starfield/ecs/render"
	"go.uber.org/zap/zaptest"
)

var testViewport = common.Viewport{Width: 800, Height: 600}

func newTestDriver(t *testing.T, counts entity.Counts, speed float64) *FrameDriver {
	t.Helper()
	d, err := NewFrameDriver(Options{
		Viewport: testViewport,
		Counts:   counts,
		Speed:    speed,
		Rand:     rand.New(rand.NewPCG(7, 11)),
		Logger:   zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("new driver: %v", err)
	}
	return d
}

// addBody inserts b directly and applies it.
func addBody(t *testing.T, d *FrameDriver, b *component.Body) ecs.Entity {
	t.Helper()
	e, err := d.Registry().Add(b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	d.Registry().Apply()
	return e
}

func TestSupernovaBecomesNebula(t *testing.T) {
	d := newTestDriver(t, entity.Counts{}, 0.05)

	sun := d.Spawner().NewSun()
	sun.Sun.WillExplode = true
	sun.Sun.Remaining = 0
	pos := sun.Pos
	e := addBody(t, d, sun)

	rec := render.NewRecorder(testViewport.Width, testViewport.Height)
	stats := d.Tick(time.Unix(0, 0), rec)

	if stats.Spawned != 1 || stats.Removed != 1 {
		t.Fatalf("spawned=%d removed=%d, want 1/1", stats.Spawned, stats.Removed)
	}
	if d.Registry().IsAlive(e) {
		t.Fatalf("exploded sun should be removed")
	}
	counts := d.Counts()
	if counts[component.KindSun] != 0 || counts[component.KindNebula] != 1 {
		t.Fatalf("counts = %v, want 0 suns and 1 nebula", counts)
	}
	neb := d.Registry().Bucket(component.KindNebula)[0]
	if neb.Pos != pos {
		t.Fatalf("nebula at %v, want the sun's position %v", neb.Pos, pos)
	}
	if neb.Nebula.State != component.NebulaGaseous {
		t.Fatalf("new nebula should be gaseous")
	}
	// The exploding sun is dormant for the frame it leaves in.
	if stats.Drawn != 0 || rec.Count(render.OpFillRadial) != 0 {
		t.Fatalf("supernova should draw nothing, drew %d bodies", stats.Drawn)
	}
}

func TestNebulaIgnitesIntoHintedSun(t *testing.T) {
	d := newTestDriver(t, entity.Counts{}, 0.05)

	neb := d.Spawner().NewNebula()
	neb.Nebula.Hue = 220
	neb.Nebula.Hint = component.ClassForHue(neb.Nebula.Hue)
	neb.Nebula.IgnitionsRequired = 1
	neb.Nebula.IgnitionsSeen = 0
	neb.Nebula.Pulses = []component.Pulse{{Left: 0, Period: 2 * time.Second}}
	pos := neb.Pos
	e := addBody(t, d, neb)

	stats := d.Tick(time.Unix(0, 0), render.NewRecorder(testViewport.Width, testViewport.Height))
	if stats.Spawned != 1 {
		t.Fatalf("spawned = %d, want 1", stats.Spawned)
	}
	if d.Registry().IsAlive(e) {
		t.Fatalf("ignited nebula should be removed")
	}
	suns := d.Registry().Bucket(component.KindSun)
	if len(suns) != 1 || d.Count(component.KindNebula) != 0 {
		t.Fatalf("counts = %v, want exactly one sun and no nebula", d.Counts())
	}
	if suns[0].Sun.Class != component.ClassO {
		t.Fatalf("sun class = %v, want O from hue 220", suns[0].Sun.Class)
	}
	if suns[0].Pos != pos || suns[0].Sun.State != component.SunStable {
		t.Fatalf("sun should be stable at %v, got %v %v", pos, suns[0].Pos, suns[0].Sun.State)
	}
}

func TestRecycleKeepsEveryBodyInFront(t *testing.T) {
	for _, kind := range component.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			var counts entity.Counts
			counts[kind] = 40
			d := newTestDriver(t, counts, 0.5)

			now := time.Unix(0, 0)
			for range 400 {
				now = now.Add(200 * time.Millisecond)
				d.Step(now)
				for _, e := range d.Registry().AllActive() {
					if z := e.Body.Pos.Z; z <= common.NearPlane {
						t.Fatalf("%s %v at z=%v after step", e.Body.Kind, e.Entity, z)
					}
					if c := e.Body.Comet; c != nil {
						for _, p := range c.Tail() {
							if p.Z <= common.NearPlane {
								t.Fatalf("comet tail point at z=%v", p.Z)
							}
						}
					}
				}
			}
		})
	}
}

// cosmetics is the part of a body that recycling must leave alone.
type cosmetics struct {
	kind    component.Kind
	outline []component.Vec2
	craters []component.Crater
	bands   []color.NRGBA
	hue     float64
	seen    int
}

func snapshot(b *component.Body) cosmetics {
	c := cosmetics{kind: b.Kind}
	if a := b.Asteroid; a != nil {
		c.outline = slices.Clone(a.Outline)
		c.craters = slices.Clone(a.Craters)
	}
	if p := b.Planet; p != nil {
		c.bands = slices.Clone(p.Bands)
	}
	if n := b.Nebula; n != nil {
		c.hue = n.Hue
		c.seen = n.IgnitionsSeen
	}
	return c
}

func TestRecyclingIsIdempotent(t *testing.T) {
	kinds := []component.Kind{
		component.KindStar,
		component.KindDust,
		component.KindAsteroid,
		component.KindPlanet,
		component.KindSpaceship,
		component.KindNebula,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			var counts entity.Counts
			counts[kind] = 20
			d := newTestDriver(t, counts, 5)
			for _, b := range d.Registry().Bucket(component.KindNebula) {
				b.Nebula.IgnitionsRequired = math.MaxInt
			}

			bodies := map[ecs.Entity]*component.Body{}
			looks := map[ecs.Entity]cosmetics{}
			for _, e := range d.Registry().AllActive() {
				bodies[e.Entity] = e.Body
				looks[e.Entity] = snapshot(e.Body)
			}

			recycled := 0
			now := time.Unix(0, 0)
			for range 600 {
				now = now.Add(100 * time.Millisecond)
				stats := d.Step(now)

				if got := d.Registry().Len(); got != len(bodies) {
					t.Fatalf("population changed from %d to %d", len(bodies), got)
				}
				if d.Count(kind) != len(bodies) {
					t.Fatalf("counts = %v, want only %d %s", d.Counts(), len(bodies), kind)
				}
				for e, want := range bodies {
					b, ok := d.Registry().Get(e)
					if !ok || b != want {
						t.Fatalf("%v no longer maps to its body", e)
					}
					if b.Kind != kind {
						t.Fatalf("%v changed kind to %s", e, b.Kind)
					}
					before, after := looks[e], snapshot(b)
					if !slices.Equal(before.outline, after.outline) || !slices.Equal(before.craters, after.craters) {
						t.Fatalf("%v asteroid shape changed", e)
					}
					if !slices.Equal(before.bands, after.bands) {
						t.Fatalf("%v planet bands changed", e)
					}
					if before.hue != after.hue || after.seen < before.seen {
						t.Fatalf("%v nebula state reset: %+v -> %+v", e, before, after)
					}
					looks[e] = after
					// A moved body keeps PrevZ above its depth; a recycled one
					// starts over with both equal.
					if stats.Elapsed > 0 && b.PrevZ == b.Pos.Z {
						recycled++
					}
				}
			}
			if recycled < len(bodies) {
				t.Fatalf("only %d recycles, want every body to cross at least once", recycled)
			}
		})
	}
}

func TestRecycleRerolls(t *testing.T) {
	w := testViewport.Width
	cases := []struct {
		name    string
		spawn   func(sp *entity.Spawner) *component.Body
		prepare func(b *component.Body)
		check   func(t *testing.T, bodies []*component.Body)
	}{
		{
			name:  "spaceship_design",
			spawn: func(sp *entity.Spawner) *component.Body { return sp.NewSpaceship() },
			prepare: func(b *component.Body) {
				b.Ship.Design = component.DesignStreak
			},
			check: func(t *testing.T, bodies []*component.Body) {
				changed := 0
				for _, b := range bodies {
					if b.Pos.Z != w {
						t.Fatalf("recycled ship at z=%v, want %v", b.Pos.Z, w)
					}
					if b.Ship.Design != component.DesignStreak {
						changed++
					}
				}
				if changed == 0 {
					t.Fatalf("no ship design was re-rolled")
				}
			},
		},
		{
			// Crossing the near plane wins over a due supernova.
			name:  "sun_reset",
			spawn: func(sp *entity.Spawner) *component.Body { return sp.NewSun() },
			prepare: func(b *component.Body) {
				b.Sun.Class = component.ClassM
				b.Sun.WillExplode = true
				b.Sun.Remaining = 0
			},
			check: func(t *testing.T, bodies []*component.Body) {
				classes := 0
				for _, b := range bodies {
					sun := b.Sun
					if sun.State != component.SunStable {
						t.Fatalf("recycled sun went supernova")
					}
					if sun.Remaining < 15*time.Second || sun.Remaining > 25*time.Second {
						t.Fatalf("remaining = %v, want a fresh lifetime", sun.Remaining)
					}
					if b.Pos.Z < 3*w || b.Pos.Z > 4*w {
						t.Fatalf("reset sun at z=%v", b.Pos.Z)
					}
					if sun.Class != component.ClassM {
						classes++
					}
				}
				if classes == 0 {
					t.Fatalf("no sun class was re-rolled")
				}
			},
		},
		{
			name:  "comet_reset",
			spawn: func(sp *entity.Spawner) *component.Body { return sp.NewComet() },
			prepare: func(b *component.Body) {
				b.Comet.Vel = common.Vec3{Z: -3}
				for i := range 5 {
					b.Comet.Push(common.Vec3{Z: b.Pos.Z + float64(i)})
				}
			},
			check: func(t *testing.T, bodies []*component.Body) {
				for _, b := range bodies {
					c := b.Comet
					if len(c.Tail()) != 0 {
						t.Fatalf("reset comet kept %d tail points", len(c.Tail()))
					}
					if b.Pos.Z < 2*w || b.Pos.Z > 3*w {
						t.Fatalf("reset comet at z=%v", b.Pos.Z)
					}
					if c.Vel.Z > -2 || c.Vel.Z < -4 || c.TailLen < 15 || c.TailLen >= 25 {
						t.Fatalf("comet not re-rolled: vel=%v tail=%d", c.Vel, c.TailLen)
					}
				}
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := newTestDriver(t, entity.Counts{}, 0.05)
			handles := map[ecs.Entity]*component.Body{}
			var bodies []*component.Body
			for range 20 {
				b := c.spawn(d.Spawner())
				handles[addBody(t, d, b)] = b
				bodies = append(bodies, b)
			}

			// The first step has no elapsed time, so nothing moves yet.
			t0 := time.Unix(0, 0)
			d.Step(t0)
			for _, b := range bodies {
				c.prepare(b)
				b.Pos.Z = common.NearPlane + 0.01
			}

			stats := d.Step(t0.Add(100 * time.Millisecond))
			if stats.Spawned != 0 || stats.Removed != 0 {
				t.Fatalf("recycling transmuted: spawned=%d removed=%d", stats.Spawned, stats.Removed)
			}
			for e, b := range handles {
				if got, ok := d.Registry().Get(e); !ok || got != b {
					t.Fatalf("%v lost its body", e)
				}
			}
			c.check(t, bodies)
		})
	}
}

func TestSupernovaSpawnsWhereTheSunEndsTheTick(t *testing.T) {
	d := newTestDriver(t, entity.Counts{}, 0.05)
	sun := d.Spawner().NewSun()
	sun.Sun.WillExplode = true
	addBody(t, d, sun)

	t0 := time.Unix(0, 0)
	d.Step(t0)
	sun.Sun.Remaining = 10 * time.Millisecond
	before := sun.Pos

	stats := d.Step(t0.Add(100 * time.Millisecond))
	if stats.Spawned != 1 {
		t.Fatalf("spawned = %d, want 1", stats.Spawned)
	}
	neb := d.Registry().Bucket(component.KindNebula)[0]
	if neb.Pos != sun.Pos {
		t.Fatalf("nebula at %v, want the sun's post-move position %v", neb.Pos, sun.Pos)
	}
	moved := Rate[component.KindSun] * 0.05 * 100
	if math.Abs(before.Z-moved-neb.Pos.Z) > 1e-9 || neb.Pos.X != before.X || neb.Pos.Y != before.Y {
		t.Fatalf("nebula at %v, want %v moved %v closer", neb.Pos, before, moved)
	}
}

func TestTransmutationConservesCount(t *testing.T) {
	var counts entity.Counts
	counts[component.KindSun] = 6
	counts[component.KindNebula] = 6
	d := newTestDriver(t, counts, 0.05)

	for _, b := range d.Registry().Bucket(component.KindSun) {
		b.Sun.WillExplode = true
		b.Sun.Remaining = time.Millisecond
	}
	for _, b := range d.Registry().Bucket(component.KindNebula) {
		b.Nebula.IgnitionsRequired = 1
	}

	now := time.Unix(0, 0)
	total := d.Registry().Len()
	transmuted := 0
	for range 200 {
		now = now.Add(50 * time.Millisecond)
		stats := d.Step(now)
		if stats.Spawned != stats.Removed {
			t.Fatalf("frame %d spawned %d but removed %d", stats.Frame, stats.Spawned, stats.Removed)
		}
		if got := d.Registry().Len(); got != total {
			t.Fatalf("population changed from %d to %d", total, got)
		}
		transmuted += stats.Spawned
	}
	if transmuted == 0 {
		t.Fatalf("expected some transmutations")
	}
}

func TestTransmuteIgnoresStaleAndDuplicateEvents(t *testing.T) {
	reg := ecs.NewRegistry()
	sp := entity.NewSpawner(rand.New(rand.NewPCG(1, 2)), testViewport, nil)

	sun := sp.NewSun()
	e, _ := reg.Add(sun)
	reg.Apply()

	ev := ecs.Event{Kind: ecs.EventSpawnNebula, From: e, Pos: sun.Pos}
	if got := Transmute(reg, sp, []ecs.Event{ev, ev}, zaptest.NewLogger(t)); got != 1 {
		t.Fatalf("duplicate events spawned %d, want 1", got)
	}
	reg.Apply()

	if got := Transmute(reg, sp, []ecs.Event{ev}, nil); got != 0 {
		t.Fatalf("event from a removed producer spawned %d", got)
	}
	if reg.Count(component.KindNebula) != 1 || reg.Count(component.KindSun) != 0 {
		t.Fatalf("counts = %v", reg.Counts())
	}
}

func TestSortByDepth(t *testing.T) {
	depths := []float64{5, 900, 42, 42, 300, 1.5, 77}
	build := func(order []int) []ecs.Entry {
		out := make([]ecs.Entry, 0, len(order))
		for _, i := range order {
			out = append(out, ecs.Entry{
				Entity: ecs.Entity{ID: i + 1},
				Body:   &component.Body{Kind: component.KindStar, Pos: common.Vec3{Z: depths[i]}},
			})
		}
		return out
	}

	a := build([]int{0, 1, 2, 3, 4, 5, 6})
	b := build([]int{6, 3, 5, 2, 4, 1, 0})
	SortByDepth(a)
	SortByDepth(b)

	for i := range a {
		if a[i].Entity != b[i].Entity {
			t.Fatalf("order depends on insertion: %v vs %v at %d", a[i].Entity, b[i].Entity, i)
		}
		if i > 0 && a[i].Body.Pos.Z > a[i-1].Body.Pos.Z {
			t.Fatalf("not descending at %d", i)
		}
	}
	if a[2].Entity.ID != 3 || a[3].Entity.ID != 4 {
		t.Fatalf("equal depths should keep handle order, got %v %v", a[2].Entity, a[3].Entity)
	}
}

func TestTickElapsed(t *testing.T) {
	var counts entity.Counts
	counts[component.KindStar] = 1
	d := newTestDriver(t, counts, 1)
	rec := render.NewRecorder(testViewport.Width, testViewport.Height)
	rec.Discard = true

	t0 := time.Unix(100, 0)
	cases := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"first_tick", t0, 0},
		{"normal", t0.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"stall_capped", t0.Add(5 * time.Second), DefaultMaxElapsed},
		{"clock_backwards", t0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := d.Tick(c.now, rec).Elapsed; got != c.want {
				t.Fatalf("elapsed = %v, want %v", got, c.want)
			}
		})
	}
}

func TestStopAndStart(t *testing.T) {
	var counts entity.Counts
	counts[component.KindStar] = 10
	d := newTestDriver(t, counts, 0.05)
	rec := render.NewRecorder(testViewport.Width, testViewport.Height)

	now := time.Unix(0, 0)
	d.Tick(now, rec)
	d.Stop()
	if d.Running() {
		t.Fatalf("driver should be stopped")
	}

	before := rec.Total()
	z := d.Registry().Bucket(component.KindStar)[0].Pos.Z
	stats := d.Tick(now.Add(time.Second), rec)
	if rec.Total() != before || stats.Drawn != 0 {
		t.Fatalf("stopped driver should not draw")
	}
	if d.Registry().Bucket(component.KindStar)[0].Pos.Z != z {
		t.Fatalf("stopped driver should not move bodies")
	}

	d.Start()
	if got := d.Tick(now.Add(time.Hour), rec).Elapsed; got != 0 {
		t.Fatalf("first tick after Start should not simulate the pause, got %v", got)
	}
}

func TestRenderPaintsOverlayFirst(t *testing.T) {
	var counts entity.Counts
	counts[component.KindStar] = 3
	counts[component.KindPlanet] = 2
	d := newTestDriver(t, counts, 0.05)
	rec := render.NewRecorder(testViewport.Width, testViewport.Height)

	stats := d.Tick(time.Unix(0, 0), rec)
	if len(rec.Calls) == 0 || rec.Calls[0].Op != render.OpFillRect {
		t.Fatalf("first call should be the overlay rect")
	}
	if c := rec.Calls[0].Color; c.A != 51 || c.R != 0 {
		t.Fatalf("overlay color = %v", c)
	}
	if stats.Drawn != 5 || stats.Skipped != 0 {
		t.Fatalf("drawn=%d skipped=%d, want 5/0", stats.Drawn, stats.Skipped)
	}
}

func TestResizeAndReconfigure(t *testing.T) {
	var counts entity.Counts
	counts[component.KindStar] = 20
	d := newTestDriver(t, counts, 0.05)

	if err := d.Resize(common.Viewport{Width: 0, Height: 10}); !errors.Is(err, ErrInvalidViewport) {
		t.Fatalf("err = %v, want ErrInvalidViewport", err)
	}
	if d.Viewport() != testViewport || d.Count(component.KindStar) != 20 {
		t.Fatalf("failed resize should keep the previous field")
	}

	bad := counts
	bad[component.KindDust] = -5
	if err := d.Reconfigure(bad); !errors.Is(err, entity.ErrNegativeCount) {
		t.Fatalf("err = %v, want ErrNegativeCount", err)
	}
	if d.Count(component.KindStar) != 20 || d.Count(component.KindDust) != 0 {
		t.Fatalf("failed reconfigure should keep the previous field")
	}

	vp := common.Viewport{Width: 1920, Height: 1080}
	if err := d.Resize(vp); err != nil {
		t.Fatalf("resize: %v", err)
	}
	for _, b := range d.Registry().Bucket(component.KindStar) {
		if b.Pos.Z > vp.Width {
			t.Fatalf("star beyond the new far plane: z=%v", b.Pos.Z)
		}
	}

	counts[component.KindComet] = 2
	if err := d.Reconfigure(counts); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	if d.Count(component.KindComet) != 2 {
		t.Fatalf("comets = %d, want 2", d.Count(component.KindComet))
	}
}

func TestSetSpeed(t *testing.T) {
	d := newTestDriver(t, entity.Counts{}, 0.05)
	d.SetSpeed(0.5)
	if d.Speed() != 0.5 {
		t.Fatalf("speed = %v", d.Speed())
	}
	d.SetSpeed(-1)
	if d.Speed() != 0 {
		t.Fatalf("negative speed should clamp to 0, got %v", d.Speed())
	}
}
