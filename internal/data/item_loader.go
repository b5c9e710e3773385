package data

import (
	"log/slog"
	"time"
)

// ItemTable — глобальный registry всех item templates.
// map[itemID]*itemDef
var ItemTable map[int32]*itemDef

// GetItemDef возвращает itemDef по item ID.
func GetItemDef(itemID int32) *itemDef {
	if ItemTable == nil {
		return nil
	}
	return ItemTable[itemID]
}

// LoadItemTemplates строит ItemTable из Go-литералов (itemDefs).
func LoadItemTemplates() error {
	ItemTable = make(map[int32]*itemDef, len(itemDefs))

	for i := range itemDefs {
		ItemTable[itemDefs[i].id] = &itemDefs[i]
	}

	slog.Info("loaded item templates", "count", len(ItemTable))
	return nil
}

// ItemDef accessor methods
func (d *itemDef) ID() int32          { return d.id }
func (d *itemDef) Name() string       { return d.name }
func (d *itemDef) Kind() ItemKind     { return d.kind }
func (d *itemDef) HPMin() int32       { return d.hpMin }
func (d *itemDef) HPMax() int32       { return d.hpMax }
func (d *itemDef) SPMin() int32       { return d.spMin }
func (d *itemDef) SPMax() int32       { return d.spMax }
func (d *itemDef) Status() StatusType { return d.status }

func (d *itemDef) Duration() time.Duration {
	return time.Duration(d.durationMs) * time.Millisecond
}
