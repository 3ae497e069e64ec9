package system

import (
	"github.com/milk9111/starfield/ecs"
	"github.com/milk9111/starfield/ecs/component"
	"github.com/milk9111/starfield/ecs/entity"
	"go.uber.org/zap"
)

// Transmute turns lifecycle events into registry mutations: the replacement
// body is queued at the producer's position and the producer is queued for
// removal. Both take effect on the next Apply. It returns the number of
// replacements spawned.
func Transmute(reg *ecs.Registry, sp *entity.Spawner, events []ecs.Event, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}

	spawned := 0
	for _, ev := range events {
		if !reg.IsAlive(ev.From) {
			continue
		}

		var b *component.Body
		switch ev.Kind {
		case ecs.EventSpawnNebula:
			b = sp.NewNebulaAt(ev.Pos)
		case ecs.EventSpawnSun:
			b = sp.NewSunAt(ev.Pos, ev.Class)
		default:
			logger.Warn("unknown lifecycle event", zap.Stringer("event", ev.Kind), zap.Stringer("from", ev.From))
			continue
		}

		// A duplicate event for the same producer must not spawn twice.
		if !reg.Remove(ev.From) {
			continue
		}
		e, err := reg.Add(b)
		if err != nil {
			logger.Error("transmute add failed", zap.Stringer("event", ev.Kind), zap.Error(err))
			continue
		}
		spawned++

		fields := []zap.Field{
			zap.Stringer("event", ev.Kind),
			zap.Stringer("from", ev.From),
			zap.Stringer("to", e),
			zap.Float64("z", ev.Pos.Z),
		}
		if ev.Kind == ecs.EventSpawnSun {
			fields = append(fields, zap.Stringer("class", ev.Class))
		}
		logger.Debug("transmute", fields...)
	}
	return spawned
}
