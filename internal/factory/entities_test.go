package factory

import (
	"testing"

	"undervault/assets"
	"undervault/internal/component"
	"undervault/internal/ecs"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 3, 4)

	if !w.Has(id, component.CTagPlayer) {
		t.Error("player missing TagPlayer")
	}
	if !w.Has(id, component.CTagBlocking) {
		t.Error("player missing TagBlocking")
	}
	f := w.Get(id, component.CFighter).(component.Fighter)
	if !f.Alive {
		t.Error("player should start alive")
	}
	if f.XPYield != 0 {
		t.Error("the player yields no experience")
	}
	if f.XP != 0 {
		t.Error("experience ledger should start at zero")
	}
	lvl := w.Get(id, component.CLevel).(component.Level)
	if lvl.Value != 1 {
		t.Errorf("starting level = %d, want 1", lvl.Value)
	}
	pos := w.Get(id, component.CPosition).(component.Position)
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("position = (%d,%d), want (3,4)", pos.X, pos.Y)
	}
}

func TestNewMonsterCarriesYield(t *testing.T) {
	w := ecs.NewWorld()
	entry := assets.MonsterEntry{Name: "troll", Glyph: "T", HP: 16, Power: 4, Defense: 1, XP: 100, Sight: 6}
	id := NewMonster(w, entry, 1, 1)

	f := w.Get(id, component.CFighter).(component.Fighter)
	if f.XPYield != 100 {
		t.Errorf("XPYield = %d, want 100", f.XPYield)
	}
	if !w.Has(id, component.CAI) || !w.Has(id, component.CTagBlocking) {
		t.Error("monster missing AI or blocking tag")
	}
	if w.Get(id, component.CRenderable).(component.Renderable).AlwaysVisible {
		t.Error("monsters must not be always-visible")
	}
}

func TestItemsAndStairsAlwaysVisible(t *testing.T) {
	w := ecs.NewWorld()
	item := NewItem(w, assets.ItemEntry{Name: "healing draught", Glyph: "!", Kind: "potion", Magnitude: 12}, 2, 2)
	stairs := NewStairs(w, 5, 5)

	for _, id := range []ecs.EntityID{item, stairs} {
		r := w.Get(id, component.CRenderable).(component.Renderable)
		if !r.AlwaysVisible {
			t.Errorf("entity %d should be always-visible", id)
		}
		if w.Has(id, component.CTagBlocking) {
			t.Errorf("entity %d must not block movement", id)
		}
	}
	if !w.Has(stairs, component.CTagStairs) {
		t.Error("stairs missing TagStairs")
	}
	it := w.Get(item, component.CItem).(component.Item)
	if it.Kind != component.ItemPotion || it.Magnitude != 12 {
		t.Errorf("item fields not carried over: %+v", it)
	}
}

func TestRuneItemKind(t *testing.T) {
	w := ecs.NewWorld()
	id := NewItem(w, assets.ItemEntry{Name: "blast rune", Glyph: "*", Kind: "rune", Magnitude: 14, Radius: 3}, 0, 0)
	it := w.Get(id, component.CItem).(component.Item)
	if it.Kind != component.ItemRune || it.Radius != 3 {
		t.Errorf("rune not constructed correctly: %+v", it)
	}
}
