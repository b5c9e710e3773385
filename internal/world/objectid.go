package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for all world entities.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid / no target)
//	0x10000000 - 0x1FFFFFFF: Players
//	0x20000000 - 0x2FFFFFFF: Monsters
type ObjectIDGenerator struct {
	nextPlayerID  atomic.Uint32
	nextMonsterID atomic.Uint32
}

// Object ID range starts.
const (
	PlayerIDBase  uint32 = 0x10000000
	MonsterIDBase uint32 = 0x20000000
)

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(PlayerIDBase)
	gen.nextMonsterID.Store(MonsterIDBase)
	return gen
}

// NextPlayerID generates next unique player object ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextMonsterID generates next unique monster object ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) NextMonsterID() uint32 {
	return g.nextMonsterID.Add(1)
}

// IsMonsterID reports whether objectID lies in the monster range.
func IsMonsterID(objectID uint32) bool {
	return objectID >= MonsterIDBase && objectID < MonsterIDBase+0x10000000
}
