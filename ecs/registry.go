package ecs

import (
	"errors"

	"github.com/milk9111/starfield/ecs/component"
)

var ErrNilBody = errors.New("ecs: nil body")

// Entry pairs a live handle with the body it owns.
type Entry struct {
	Entity Entity
	Body   *component.Body
}

// Applied reports what a call to Apply changed.
type Applied struct {
	Added   int
	Removed int
}

// Registry owns every active body, bucketed by kind. Additions and removals
// are buffered and only take effect in Apply, so a view returned by AllActive
// is never invalidated by Add or Remove.
type Registry struct {
	entities entityStore
	buckets  [component.KindCount]SparseSet[*component.Body]
	kindOf   SparseSet[component.Kind]

	pendingAdd    []Entry
	pendingRemove []Entity
	removing      map[Entity]struct{}
}

func NewRegistry() *Registry {
	return &Registry{removing: make(map[Entity]struct{})}
}

// Add reserves a handle for b and queues it for insertion.
func (r *Registry) Add(b *component.Body) (Entity, error) {
	if b == nil {
		return Entity{}, ErrNilBody
	}
	if !b.Kind.Valid() {
		return Entity{}, errors.New("ecs: body has invalid kind " + b.Kind.String())
	}
	e := r.entities.create()
	r.pendingAdd = append(r.pendingAdd, Entry{Entity: e, Body: b})
	return e, nil
}

// Remove queues an active entity for removal. Repeated removals of the same
// entity before Apply collapse into one; unknown handles are ignored.
func (r *Registry) Remove(e Entity) bool {
	if !r.IsAlive(e) {
		return false
	}
	if _, dup := r.removing[e]; dup {
		return false
	}
	if r.removing == nil {
		r.removing = make(map[Entity]struct{})
	}
	r.removing[e] = struct{}{}
	r.pendingRemove = append(r.pendingRemove, e)
	return true
}

// Apply performs all buffered removals, then all buffered insertions, in the
// order they were queued.
func (r *Registry) Apply() Applied {
	var out Applied
	for _, e := range r.pendingRemove {
		kind, ok := r.kindOf.Get(e.ID)
		if !ok {
			continue
		}
		r.buckets[kind].Remove(e.ID)
		r.kindOf.Remove(e.ID)
		r.entities.destroy(e)
		out.Removed++
	}
	for _, add := range r.pendingAdd {
		r.buckets[add.Body.Kind].Set(add.Entity.ID, add.Body)
		r.kindOf.Set(add.Entity.ID, add.Body.Kind)
		out.Added++
	}
	clear(r.pendingAdd)
	r.pendingAdd = r.pendingAdd[:0]
	r.pendingRemove = r.pendingRemove[:0]
	clear(r.removing)
	return out
}

// Pending returns the number of buffered insertions and removals.
func (r *Registry) Pending() (adds, removes int) {
	return len(r.pendingAdd), len(r.pendingRemove)
}

// IsAlive reports whether e refers to an applied, not yet removed body.
func (r *Registry) IsAlive(e Entity) bool {
	return r.entities.isAlive(e) && r.kindOf.Has(e.ID)
}

func (r *Registry) Get(e Entity) (*component.Body, bool) {
	if !r.IsAlive(e) {
		return nil, false
	}
	kind, _ := r.kindOf.Get(e.ID)
	return r.buckets[kind].Get(e.ID)
}

// AllActive returns a fresh flattened view of every applied body. The slice
// belongs to the caller.
func (r *Registry) AllActive() []Entry {
	out := make([]Entry, 0, r.Len())
	for k := range r.buckets {
		bucket := &r.buckets[k]
		bodies := bucket.Values()
		for i, id := range bucket.IDs() {
			out = append(out, Entry{
				Entity: Entity{ID: id, Gen: r.entities.gen[id-1]},
				Body:   bodies[i],
			})
		}
	}
	return out
}

// Bucket returns the applied bodies of one kind. It must not be modified.
func (r *Registry) Bucket(kind component.Kind) []*component.Body {
	if !kind.Valid() {
		return nil
	}
	return r.buckets[kind].Values()
}

func (r *Registry) Count(kind component.Kind) int {
	if !kind.Valid() {
		return 0
	}
	return r.buckets[kind].Len()
}

// Counts returns the number of applied bodies per kind.
func (r *Registry) Counts() [component.KindCount]int {
	var out [component.KindCount]int
	for k := range r.buckets {
		out[k] = r.buckets[k].Len()
	}
	return out
}

func (r *Registry) Len() int {
	return r.kindOf.Len()
}

// Reset discards every body and pending mutation. Previously issued handles
// become invalid.
func (r *Registry) Reset() {
	for _, id := range r.kindOf.IDs() {
		r.entities.destroy(Entity{ID: id, Gen: r.entities.gen[id-1]})
	}
	for _, add := range r.pendingAdd {
		r.entities.destroy(add.Entity)
	}
	for k := range r.buckets {
		r.buckets[k].Clear()
	}
	r.kindOf.Clear()
	clear(r.pendingAdd)
	r.pendingAdd = r.pendingAdd[:0]
	r.pendingRemove = r.pendingRemove[:0]
	clear(r.removing)
}
