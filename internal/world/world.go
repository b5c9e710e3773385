package world

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/udisondev/autoplay/internal/model"
)

// Cell — координаты клетки на карте.
type Cell struct {
	X, Y int32
}

// GameMap is a single cell-grid map with flags.
type GameMap struct {
	id     int32
	name   string
	width  int32
	height int32

	regions [][]*Region // [rx][ry]

	mu         sync.RWMutex
	noTeleport bool
	water      map[Cell]struct{}
}

func newGameMap(id int32, name string, width, height int32) *GameMap {
	m := &GameMap{
		id:     id,
		name:   name,
		width:  width,
		height: height,
		water:  make(map[Cell]struct{}),
	}

	rxs, rys := RegionsFor(width), RegionsFor(height)
	m.regions = make([][]*Region, rxs)
	for rx := range rxs {
		m.regions[rx] = make([]*Region, rys)
		for ry := range rys {
			m.regions[rx][ry] = NewRegion(rx, ry)
		}
	}
	return m
}

// ID returns map id.
func (m *GameMap) ID() int32 { return m.id }

// Name returns map name.
func (m *GameMap) Name() string { return m.name }

// Width returns map width in cells.
func (m *GameMap) Width() int32 { return m.width }

// Height returns map height in cells.
func (m *GameMap) Height() int32 { return m.height }

// InBounds reports whether (x, y) is a valid cell.
func (m *GameMap) InBounds(x, y int32) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// NoTeleport reports whether teleporting is forbidden on this map.
func (m *GameMap) NoTeleport() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.noTeleport
}

// SetNoTeleport sets the no-teleport map flag.
func (m *GameMap) SetNoTeleport(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.noTeleport = v
}

// SetWater marks (or unmarks) a cell as water.
func (m *GameMap) SetWater(x, y int32, water bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if water {
		m.water[Cell{x, y}] = struct{}{}
		return
	}
	delete(m.water, Cell{x, y})
}

// IsWater reports whether the cell is water.
func (m *GameMap) IsWater(x, y int32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.water[Cell{x, y}]
	return ok
}

// region returns region containing cell, nil if out of bounds.
func (m *GameMap) region(x, y int32) *Region {
	if !m.InBounds(x, y) {
		return nil
	}
	rx, ry := CoordToRegionIndex(x, y)
	return m.regions[rx][ry]
}

// World holds maps and every object placed on them.
type World struct {
	mapsMu sync.RWMutex
	maps   map[int32]*GameMap

	objects sync.Map // objectID → *model.WorldObject
	players sync.Map // characterID → *model.Player

	ids *ObjectIDGenerator
}

// New creates an empty world.
func New() *World {
	return &World{
		maps: make(map[int32]*GameMap),
		ids:  NewObjectIDGenerator(),
	}
}

// IDs returns the world object id generator.
func (w *World) IDs() *ObjectIDGenerator {
	return w.ids
}

// AddMap registers a new map. Returns error if id is taken or size is invalid.
func (w *World) AddMap(id int32, name string, width, height int32) (*GameMap, error) {
	if width <= 0 || height <= 0 || width > MaxMapSize || height > MaxMapSize {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}

	w.mapsMu.Lock()
	defer w.mapsMu.Unlock()

	if _, ok := w.maps[id]; ok {
		return nil, fmt.Errorf("map %d already exists", id)
	}
	m := newGameMap(id, name, width, height)
	w.maps[id] = m
	return m, nil
}

// GetMap returns map by id.
func (w *World) GetMap(id int32) (*GameMap, bool) {
	w.mapsMu.RLock()
	defer w.mapsMu.RUnlock()
	m, ok := w.maps[id]
	return m, ok
}

// MapCount returns number of registered maps.
func (w *World) MapCount() int {
	w.mapsMu.RLock()
	defer w.mapsMu.RUnlock()
	return len(w.maps)
}

// AddObject places object on its map.
// Returns error if map is unknown or coordinates are out of bounds.
func (w *World) AddObject(obj *model.WorldObject) error {
	loc := obj.Location()
	m, ok := w.GetMap(loc.MapID)
	if !ok {
		return fmt.Errorf("unknown map %d for object %d", loc.MapID, obj.ObjectID())
	}
	region := m.region(loc.X, loc.Y)
	if region == nil {
		return fmt.Errorf("invalid coordinates for object %d: (%d, %d)", obj.ObjectID(), loc.X, loc.Y)
	}

	w.objects.Store(obj.ObjectID(), obj)
	region.AddObject(obj)
	return nil
}

// AddPlayer places player and indexes it by character id.
func (w *World) AddPlayer(p *model.Player) error {
	if err := w.AddObject(p.WorldObject); err != nil {
		return fmt.Errorf("adding player to world: %w", err)
	}
	w.players.Store(p.CharacterID(), p)
	return nil
}

// AddMonster places monster.
func (w *World) AddMonster(m *model.Monster) error {
	if err := w.AddObject(m.WorldObject); err != nil {
		return fmt.Errorf("adding monster to world: %w", err)
	}
	return nil
}

// RemoveObject removes object from world and its region.
func (w *World) RemoveObject(objectID uint32) {
	value, ok := w.objects.LoadAndDelete(objectID)
	if !ok {
		return
	}

	obj := value.(*model.WorldObject)
	loc := obj.Location()
	if m, ok := w.GetMap(loc.MapID); ok {
		if region := m.region(loc.X, loc.Y); region != nil {
			region.RemoveObject(objectID)
		}
	}
	if p, ok := obj.Data.(*model.Player); ok {
		w.players.Delete(p.CharacterID())
	}
}

// MoveObject moves object to loc, updating region membership.
func (w *World) MoveObject(obj *model.WorldObject, loc model.Location) error {
	m, ok := w.GetMap(loc.MapID)
	if !ok {
		return fmt.Errorf("unknown map %d", loc.MapID)
	}
	dst := m.region(loc.X, loc.Y)
	if dst == nil {
		return fmt.Errorf("invalid coordinates (%d, %d) on map %d", loc.X, loc.Y, loc.MapID)
	}

	old := obj.Location()
	if om, ok := w.GetMap(old.MapID); ok {
		if src := om.region(old.X, old.Y); src != nil && src != dst {
			src.RemoveObject(obj.ObjectID())
		}
	}
	obj.SetLocation(loc)
	dst.AddObject(obj)
	return nil
}

// GetObject returns object by ID
func (w *World) GetObject(objectID uint32) (*model.WorldObject, bool) {
	value, ok := w.objects.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*model.WorldObject), true
}

// GetMonster returns monster by object ID.
func (w *World) GetMonster(objectID uint32) (*model.Monster, bool) {
	obj, ok := w.GetObject(objectID)
	if !ok {
		return nil, false
	}
	m, ok := obj.Data.(*model.Monster)
	return m, ok
}

// GetPlayer returns player by character id.
func (w *World) GetPlayer(characterID int64) (*model.Player, bool) {
	value, ok := w.players.Load(characterID)
	if !ok {
		return nil, false
	}
	return value.(*model.Player), true
}

// ForEachPlayer iterates over online players. Stops when fn returns false.
func (w *World) ForEachPlayer(fn func(*model.Player) bool) {
	w.players.Range(func(_, value any) bool {
		return fn(value.(*model.Player))
	})
}

// FindPlayerByName returns the first player with the given name.
func (w *World) FindPlayerByName(name string) (*model.Player, bool) {
	var found *model.Player
	w.ForEachPlayer(func(p *model.Player) bool {
		if p.Name() == name {
			found = p
			return false
		}
		return true
	})
	return found, found != nil
}

// ForEachObjectInSquare visits objects within the square of half-width radius
// around center (same map). Stops when fn returns false.
func (w *World) ForEachObjectInSquare(center model.Location, radius int32, fn func(*model.WorldObject) bool) {
	m, ok := w.GetMap(center.MapID)
	if !ok || radius < 0 {
		return
	}

	minX, minY := max(center.X-radius, 0), max(center.Y-radius, 0)
	maxX, maxY := min(center.X+radius, m.width-1), min(center.Y+radius, m.height-1)
	if minX > maxX || minY > maxY {
		return
	}
	rx0, ry0 := CoordToRegionIndex(minX, minY)
	rx1, ry1 := CoordToRegionIndex(maxX, maxY)

	for rx := rx0; rx <= rx1; rx++ {
		for ry := ry0; ry <= ry1; ry++ {
			for _, obj := range m.regions[rx][ry].Snapshot() {
				if !center.InSquare(obj.Location(), radius) {
					continue
				}
				if !fn(obj) {
					return
				}
			}
		}
	}
}

// NoTeleport reports whether map forbids teleport. Unknown maps forbid it.
func (w *World) NoTeleport(mapID int32) bool {
	m, ok := w.GetMap(mapID)
	if !ok {
		return true
	}
	return m.NoTeleport()
}

// IsWaterCell reports whether loc is a water cell.
func (w *World) IsWaterCell(loc model.Location) bool {
	m, ok := w.GetMap(loc.MapID)
	if !ok {
		return false
	}
	return m.IsWater(loc.X, loc.Y)
}

// RandomCell returns a uniformly random cell of the map.
func (w *World) RandomCell(mapID int32, rnd *rand.Rand) (model.Location, bool) {
	m, ok := w.GetMap(mapID)
	if !ok {
		return model.Location{}, false
	}
	return model.NewLocation(mapID, rnd.Int32N(m.width), rnd.Int32N(m.height)), true
}

// ClampToMap returns loc clamped to map bounds.
func (w *World) ClampToMap(loc model.Location) model.Location {
	m, ok := w.GetMap(loc.MapID)
	if !ok {
		return loc
	}
	loc.X = min(max(loc.X, 0), m.width-1)
	loc.Y = min(max(loc.Y, 0), m.height-1)
	return loc
}

// ObjectCount returns total number of objects in world (O(N)).
func (w *World) ObjectCount() int {
	count := 0
	w.objects.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
