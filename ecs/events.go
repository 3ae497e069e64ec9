package ecs

import (
	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
)

// EventKind identifies lifecycle event types.
type EventKind uint8

const (
	// EventSpawnNebula is emitted by a sun that went supernova.
	EventSpawnNebula EventKind = iota + 1
	// EventSpawnSun is emitted by a nebula that ignited.
	EventSpawnSun
)

func (k EventKind) String() string {
	switch k {
	case EventSpawnNebula:
		return "spawn_nebula"
	case EventSpawnSun:
		return "spawn_sun"
	}
	return "unknown"
}

// Event is a transmutation request. From is the producing entity, which the
// frame removes when the replacement is spawned at Pos.
type Event struct {
	Kind  EventKind
	From  Entity
	Pos   common.Vec3
	Class component.StarClass
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events in push order and clears the queue. The returned
// slice is only valid until the next Push.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = q.items[:0]
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
