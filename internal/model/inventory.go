package model

import (
	"fmt"
	"sync"
)

// Inventory — хранилище предметов персонажа.
// Слоты адресуются индексом; освобождённый слот переиспользуется.
type Inventory struct {
	ownerID int64 // Character ID владельца

	slots []*Item

	mu sync.RWMutex
}

// NewInventory создаёт новый инвентарь для персонажа.
func NewInventory(ownerID int64) *Inventory {
	return &Inventory{ownerID: ownerID}
}

// OwnerID возвращает character ID владельца.
func (inv *Inventory) OwnerID() int64 {
	return inv.ownerID
}

// Add добавляет count предметов itemID, объединяя с существующим стеком.
// Возвращает индекс слота.
func (inv *Inventory) Add(itemID, count int32) (int, error) {
	if count <= 0 {
		return -1, fmt.Errorf("count must be positive, got %d", count)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	for idx, it := range inv.slots {
		if it != nil && it.itemID == itemID {
			it.count += count
			return idx, nil
		}
	}

	item, err := NewItem(itemID, count)
	if err != nil {
		return -1, fmt.Errorf("adding item to inventory: %w", err)
	}

	for idx, it := range inv.slots {
		if it == nil {
			inv.slots[idx] = item
			return idx, nil
		}
	}
	inv.slots = append(inv.slots, item)
	return len(inv.slots) - 1, nil
}

// FindByItemID возвращает индекс слота с предметом itemID или -1.
func (inv *Inventory) FindByItemID(itemID int32) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	for idx, it := range inv.slots {
		if it != nil && it.itemID == itemID {
			return idx
		}
	}
	return -1
}

// CountOf возвращает общее количество предметов itemID.
func (inv *Inventory) CountOf(itemID int32) int32 {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	var n int32
	for _, it := range inv.slots {
		if it != nil && it.itemID == itemID {
			n += it.count
		}
	}
	return n
}

// At возвращает предмет в слоте (nil если пусто или индекс вне диапазона).
func (inv *Inventory) At(slot int) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if slot < 0 || slot >= len(inv.slots) {
		return nil
	}
	return inv.slots[slot]
}

// Consume списывает один предмет из слота.
// Возвращает itemID списанного предмета.
func (inv *Inventory) Consume(slot int) (int32, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if slot < 0 || slot >= len(inv.slots) || inv.slots[slot] == nil {
		return 0, fmt.Errorf("slot %d is empty", slot)
	}
	it := inv.slots[slot]
	it.count--
	if it.count <= 0 {
		inv.slots[slot] = nil
	}
	return it.itemID, nil
}

// Items возвращает копию непустых слотов (slot → item).
func (inv *Inventory) Items() map[int]Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make(map[int]Item, len(inv.slots))
	for idx, it := range inv.slots {
		if it != nil {
			out[idx] = *it
		}
	}
	return out
}
