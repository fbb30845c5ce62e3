package system

import (
	"testing"

	"undervault/internal/gamemap"
)

// openMap builds an all-floor map of the given size.
func openMap(w, h int) *gamemap.GameMap {
	m := gamemap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
	return m
}

func TestFOVOriginVisible(t *testing.T) {
	m := openMap(11, 11)
	UpdateFOV(m, 5, 5, 4)
	if !m.IsVisible(5, 5) {
		t.Error("origin must be visible")
	}
	if !m.IsExplored(5, 5) {
		t.Error("origin must be marked explored")
	}
}

func TestFOVRadiusLimit(t *testing.T) {
	m := openMap(21, 21)
	UpdateFOV(m, 10, 10, 4)
	if m.IsVisible(10, 16) {
		t.Error("tile beyond radius should not be visible")
	}
	if !m.IsVisible(10, 13) {
		t.Error("open tile within radius should be visible")
	}
}

func TestFOVWallsBlock(t *testing.T) {
	m := openMap(21, 21)
	// Wall column directly east of the origin.
	for y := 8; y <= 12; y++ {
		m.Set(12, y, gamemap.MakeWall())
	}
	UpdateFOV(m, 10, 10, 8)
	if !m.IsVisible(12, 10) {
		t.Error("the wall itself should be lit")
	}
	if m.IsVisible(14, 10) {
		t.Error("tile behind the wall should be shadowed")
	}
}

func TestFOVExploredPersists(t *testing.T) {
	m := openMap(21, 21)
	UpdateFOV(m, 10, 10, 4)
	if !m.IsExplored(12, 10) {
		t.Fatal("nearby tile should be explored")
	}
	// Move far away; old tile leaves FOV but stays explored.
	UpdateFOV(m, 2, 2, 4)
	if m.IsVisible(12, 10) {
		t.Error("old tile should no longer be visible")
	}
	if !m.IsExplored(12, 10) {
		t.Error("explored memory must persist within a level")
	}
}
