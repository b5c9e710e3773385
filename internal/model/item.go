package model

import "fmt"

// Item — стек предметов в одном слоте инвентаря.
type Item struct {
	itemID int32
	count  int32
}

// NewItem создаёт стек предметов.
func NewItem(itemID, count int32) (*Item, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("itemID must be positive, got %d", itemID)
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	return &Item{itemID: itemID, count: count}, nil
}

// ItemID возвращает ID шаблона предмета.
func (i *Item) ItemID() int32 {
	return i.itemID
}

// Count возвращает количество в стеке.
func (i *Item) Count() int32 {
	return i.count
}
