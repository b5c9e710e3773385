package world

import (
	"sync"
	"sync/atomic"

	"github.com/udisondev/autoplay/internal/model"
)

// Region represents a single map region (16×16 cells).
// Objects are kept in a sync.Map with a lazily rebuilt snapshot for range queries.
type Region struct {
	rx, ry int32 // region coordinates

	objects sync.Map // objectID → *model.WorldObject

	snapshotCache atomic.Value // []*model.WorldObject (immutable after rebuild)
	snapshotDirty atomic.Bool  // true if cache is stale (objects added/removed)

	version atomic.Uint64 // incremented on Add/Remove
}

// NewRegion creates a new region
func NewRegion(rx, ry int32) *Region {
	return &Region{rx: rx, ry: ry}
}

// RX returns region X index
func (r *Region) RX() int32 {
	return r.rx
}

// RY returns region Y index
func (r *Region) RY() int32 {
	return r.ry
}

// Version returns current region version (incremented on Add/Remove).
func (r *Region) Version() uint64 {
	return r.version.Load()
}

// AddObject adds object to region (concurrent-safe).
func (r *Region) AddObject(obj *model.WorldObject) {
	r.objects.Store(obj.ObjectID(), obj)
	r.version.Add(1)
	r.snapshotDirty.Store(true)
}

// RemoveObject removes object from region (concurrent-safe).
func (r *Region) RemoveObject(objectID uint32) {
	r.objects.Delete(objectID)
	r.version.Add(1)
	r.snapshotDirty.Store(true)
}

// Snapshot returns cached snapshot of region objects.
// Возвращаемый срез разделяется между вызовами, не модифицировать.
func (r *Region) Snapshot() []*model.WorldObject {
	if !r.snapshotDirty.Load() {
		if cache := r.snapshotCache.Load(); cache != nil {
			return cache.([]*model.WorldObject)
		}
	}
	return r.rebuildSnapshot()
}

// rebuildSnapshot rebuilds snapshot cache from sync.Map.
func (r *Region) rebuildSnapshot() []*model.WorldObject {
	objects := make([]*model.WorldObject, 0, 16)
	r.objects.Range(func(_, value any) bool {
		objects = append(objects, value.(*model.WorldObject))
		return true
	})

	r.snapshotCache.Store(objects)
	r.snapshotDirty.Store(false)
	return objects
}
