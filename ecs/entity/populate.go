package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/starfield/ecs"
	"github.com/milk9111/starfield/ecs/component"
)

var (
	ErrInvalidViewport = errors.New("entity: viewport must have positive width and height")
	ErrNegativeCount   = errors.New("entity: negative population count")
)

// Counts is the number of bodies to create per kind.
type Counts [component.KindCount]int

func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Validate checks counts against a spawner before anything is touched.
func (c Counts) Validate() error {
	for k, v := range c {
		if v < 0 {
			return fmt.Errorf("%w: %s = %d", ErrNegativeCount, component.Kind(k), v)
		}
	}
	return nil
}

// Populate replaces everything in reg with a fresh population. On error the
// registry is left as it was.
func Populate(reg *ecs.Registry, counts Counts, s *Spawner) error {
	if !s.Viewport.Valid() {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, s.Viewport.Width, s.Viewport.Height)
	}
	if err := counts.Validate(); err != nil {
		return err
	}

	reg.Reset()
	for _, kind := range component.Kinds() {
		for range counts[kind] {
			if _, err := reg.Add(s.New(kind)); err != nil {
				return fmt.Errorf("entity: populate %s: %w", kind, err)
			}
		}
	}
	reg.Apply()
	return nil
}
