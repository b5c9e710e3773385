package model

import "testing"

func TestInventory_AddMergesStacks(t *testing.T) {
	inv := NewInventory(1)

	slot, err := inv.Add(504, 10)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	again, err := inv.Add(504, 5)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if again != slot {
		t.Errorf("second add went to slot %d, want %d", again, slot)
	}
	if n := inv.CountOf(504); n != 15 {
		t.Errorf("CountOf = %d, want 15", n)
	}
	if _, err := inv.Add(504, 0); err == nil {
		t.Error("zero count accepted")
	}
}

func TestInventory_ConsumeFreesSlot(t *testing.T) {
	inv := NewInventory(1)
	wing, _ := inv.Add(601, 1)
	pot, _ := inv.Add(501, 2)

	if id, err := inv.Consume(wing); err != nil || id != 601 {
		t.Fatalf("Consume = %d, %v", id, err)
	}
	if inv.At(wing) != nil {
		t.Error("empty slot still holds an item")
	}
	if inv.FindByItemID(601) != -1 {
		t.Error("consumed item still found")
	}
	if _, err := inv.Consume(wing); err == nil {
		t.Error("consuming an empty slot succeeded")
	}

	// freed slot is reused
	slot, _ := inv.Add(645, 1)
	if slot != wing {
		t.Errorf("new stack in slot %d, want reused %d", slot, wing)
	}
	if inv.FindByItemID(501) != pot {
		t.Errorf("FindByItemID(501) = %d, want %d", inv.FindByItemID(501), pot)
	}
	if len(inv.Items()) != 2 {
		t.Errorf("Items = %v, want 2 stacks", inv.Items())
	}
}

func TestMonster_SharesCharacterState(t *testing.T) {
	m := NewMonster(7, 1002, "Poring", NewLocation(1, 3, 3), 1, 50)

	if m.WorldObject.Data != m {
		t.Error("world object does not point back to the monster")
	}
	m.SetTarget(42)
	m.SetCurrentHP(0)
	if !m.IsDead() || m.Target() != 42 {
		t.Errorf("dead=%v target=%d", m.IsDead(), m.Target())
	}
	m.SetAggressive(true)
	if !m.IsAggressive() || m.TemplateID() != 1002 {
		t.Error("template fields lost")
	}
}
