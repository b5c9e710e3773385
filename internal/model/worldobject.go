package model

import "sync"

// WorldObject — базовый класс для всех игровых объектов в мире.
// Все объекты имеют ObjectID, Name и Location.
type WorldObject struct {
	objectID uint32
	name     string
	location Location
	Data     any // *Player или *Monster

	mu sync.RWMutex
}

// NewWorldObject создаёт новый объект в игровом мире.
func NewWorldObject(objectID uint32, name string, loc Location) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		name:     name,
		location: loc,
	}
}

// ObjectID возвращает уникальный ID объекта (immutable после создания).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Name возвращает имя объекта.
func (w *WorldObject) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

// Location возвращает копию координат объекта (value type).
func (w *WorldObject) Location() Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.location
}

// SetLocation устанавливает новые координаты объекта.
func (w *WorldObject) SetLocation(loc Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.location = loc
}

// MapID возвращает карту объекта (convenience method для hot path).
func (w *WorldObject) MapID() int32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.location.MapID
}
