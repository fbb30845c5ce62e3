package assets

import "testing"

func TestTablesLoaded(t *testing.T) {
	if len(Monsters) == 0 {
		t.Fatal("monster table is empty")
	}
	if len(Items) == 0 {
		t.Fatal("item table is empty")
	}
}

func TestMonsterEntriesSane(t *testing.T) {
	for _, e := range Monsters {
		if e.Name == "" || e.Glyph == "" {
			t.Errorf("entry %+v missing name or glyph", e)
		}
		if e.HP <= 0 || e.Weight <= 0 || e.MinDepth < 1 {
			t.Errorf("entry %q has non-positive hp/weight or bad min_depth", e.Name)
		}
		if e.XP < 0 {
			t.Errorf("entry %q has negative xp yield", e.Name)
		}
	}
}

func TestItemKindsKnown(t *testing.T) {
	for _, e := range Items {
		switch e.Kind {
		case "potion", "rune":
		default:
			t.Errorf("item %q has unknown kind %q", e.Name, e.Kind)
		}
		if e.Kind == "rune" && e.Radius <= 0 {
			t.Errorf("rune %q needs a positive radius", e.Name)
		}
	}
}

func TestDepthFiltering(t *testing.T) {
	shallow := MonstersForDepth(1)
	deep := MonstersForDepth(12)
	if len(shallow) == 0 {
		t.Fatal("depth 1 must have eligible monsters")
	}
	if len(deep) < len(shallow) {
		t.Error("deeper depths should only widen the table")
	}
	for _, e := range shallow {
		if e.MinDepth > 1 {
			t.Errorf("entry %q leaked into depth 1 (min_depth %d)", e.Name, e.MinDepth)
		}
	}
}

func TestPaletteDeepens(t *testing.T) {
	if WallColor(1) == WallColor(12) {
		t.Error("wall tint should change with depth")
	}
	// Past the span the ramp saturates.
	if WallColor(12) != WallColor(40) {
		t.Error("tint should clamp beyond the palette span")
	}
}
