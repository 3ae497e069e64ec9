package entity

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs"
	"github.com/milk9111/starfield/ecs/component"
)

func newTestSpawner(seed uint64) *Spawner {
	return NewSpawner(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), common.Viewport{Width: 800, Height: 600}, nil)
}

func TestPopulateCounts(t *testing.T) {
	reg := ecs.NewRegistry()
	s := newTestSpawner(1)

	var counts Counts
	counts[component.KindStar] = 40
	counts[component.KindDust] = 100
	counts[component.KindAsteroid] = 5
	counts[component.KindPlanet] = 3
	counts[component.KindSpaceship] = 4
	counts[component.KindComet] = 2
	counts[component.KindSun] = 2
	counts[component.KindNebula] = 1

	if err := Populate(reg, counts, s); err != nil {
		t.Fatalf("populate failed: %v", err)
	}
	if got := reg.Counts(); got != [component.KindCount]int(counts) {
		t.Fatalf("counts = %v, want %v", got, counts)
	}
	if reg.Len() != counts.Total() {
		t.Fatalf("len = %d, want %d", reg.Len(), counts.Total())
	}
	for _, e := range reg.AllActive() {
		if e.Body.Pos.Z <= common.NearPlane {
			t.Fatalf("%s spawned at z=%v, must start beyond the near plane", e.Body.Kind, e.Body.Pos.Z)
		}
		if e.Body.Dormant() {
			t.Fatalf("%s spawned dormant", e.Body.Kind)
		}
	}

	// Populating again replaces rather than accumulates.
	counts[component.KindDust] = 10
	if err := Populate(reg, counts, s); err != nil {
		t.Fatalf("repopulate failed: %v", err)
	}
	if reg.Count(component.KindDust) != 10 || reg.Len() != counts.Total() {
		t.Fatalf("repopulate should replace the set, got %v", reg.Counts())
	}
}

func TestPopulateRejectsInvalidInput(t *testing.T) {
	var good Counts
	good[component.KindStar] = 5

	negative := good
	negative[component.KindComet] = -1

	cases := []struct {
		name   string
		vp     common.Viewport
		counts Counts
		want   error
	}{
		{"zero_width", common.Viewport{Width: 0, Height: 600}, good, ErrInvalidViewport},
		{"negative_height", common.Viewport{Width: 800, Height: -1}, good, ErrInvalidViewport},
		{"negative_count", common.Viewport{Width: 800, Height: 600}, negative, ErrNegativeCount},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg := ecs.NewRegistry()
			s := newTestSpawner(2)
			if err := Populate(reg, good, s); err != nil {
				t.Fatalf("seed populate failed: %v", err)
			}
			before := reg.AllActive()

			s.Viewport = c.vp
			err := Populate(reg, c.counts, s)
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
			after := reg.AllActive()
			if len(after) != len(before) {
				t.Fatalf("failed populate changed the set: %d -> %d", len(before), len(after))
			}
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("failed populate changed entry %d", i)
				}
			}
		})
	}
}

func TestVariantMatchesKind(t *testing.T) {
	s := newTestSpawner(3)
	for _, kind := range component.Kinds() {
		b := s.New(kind)
		if b == nil || b.Kind != kind {
			t.Fatalf("New(%s) returned %+v", kind, b)
		}
		variants := 0
		for _, set := range []bool{b.Asteroid != nil, b.Planet != nil, b.Ship != nil, b.Comet != nil, b.Sun != nil, b.Nebula != nil} {
			if set {
				variants++
			}
		}
		want := 1
		if kind == component.KindStar || kind == component.KindDust {
			want = 0
		}
		if variants != want {
			t.Fatalf("%s carries %d variants, want %d", kind, variants, want)
		}
	}
}

func TestRecycleLandsBeyondNearPlane(t *testing.T) {
	s := newTestSpawner(4)
	for _, kind := range component.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			b := s.New(kind)
			for range 50 {
				b.Pos.Z = 0.5
				s.Recycle(b)
				if b.Pos.Z <= common.NearPlane {
					t.Fatalf("recycled to z=%v", b.Pos.Z)
				}
				if b.PrevZ != b.Pos.Z {
					t.Fatalf("recycle left a stale PrevZ %v (z=%v)", b.PrevZ, b.Pos.Z)
				}
			}
		})
	}
}

func TestNebulaHintUsesClassifier(t *testing.T) {
	s := newTestSpawner(5)
	s.Classify = func(float64) component.StarClass { return component.ClassK }
	for range 20 {
		if got := s.NewNebula().Nebula.Hint; got != component.ClassK {
			t.Fatalf("hint = %v, want K", got)
		}
	}
}

func TestCometAimsAcrossView(t *testing.T) {
	s := newTestSpawner(6)
	for range 100 {
		b := s.NewComet()
		c := b.Comet
		if c.Vel.Z >= -2 || c.Vel.Z < -4 {
			t.Fatalf("vz = %v, want in [-4, -2)", c.Vel.Z)
		}
		if c.TailLen < 15 || c.TailLen >= 25 {
			t.Fatalf("tail length = %d", c.TailLen)
		}
		if len(c.Tail()) != 0 {
			t.Fatalf("fresh comet should have no tail")
		}
		// Lateral velocity points toward the screen center.
		if (b.Pos.X < 400) != (c.Vel.X > 0) && c.Vel.X != 0 {
			t.Fatalf("x velocity %v does not point toward center from %v", c.Vel.X, b.Pos.X)
		}
	}
}
