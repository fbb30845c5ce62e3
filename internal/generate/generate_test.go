package generate

import (
	"math/rand"
	"testing"

	"undervault/assets"
)

func testConfig(seed int64) *Config {
	return &Config{
		MapWidth:           60,
		MapHeight:          30,
		MaxRooms:           12,
		MinRoomSize:        4,
		MaxRoomSize:        8,
		MaxMonstersPerRoom: 2,
		MaxItemsPerRoom:    1,
		Depth:              1,
		MonsterTable:       assets.MonstersForDepth(1),
		ItemTable:          assets.ItemsForDepth(1),
		Rand:               rand.New(rand.NewSource(seed)),
	}
}

func TestGeneratePlayerSpawnWalkable(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := testConfig(seed)
		m, px, py := Generate(cfg)
		if !m.IsWalkable(px, py) {
			t.Errorf("seed %d: player spawn (%d,%d) not walkable", seed, px, py)
		}
		if len(m.Rooms) == 0 {
			t.Errorf("seed %d: no rooms generated", seed)
		}
	}
}

func TestGenerateRoomsDisjoint(t *testing.T) {
	cfg := testConfig(7)
	m, _, _ := Generate(cfg)
	for i := range m.Rooms {
		for j := i + 1; j < len(m.Rooms); j++ {
			if m.Rooms[i].Intersects(m.Rooms[j]) {
				t.Errorf("rooms %d and %d overlap", i, j)
			}
		}
	}
}

func TestPopulateStairsAlwaysPlaced(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := testConfig(seed)
		m, _, _ := Generate(cfg)
		pop := Populate(m, cfg)
		if !m.IsWalkable(pop.Stairs.X, pop.Stairs.Y) {
			t.Errorf("seed %d: stairs at (%d,%d) not walkable", seed, pop.Stairs.X, pop.Stairs.Y)
		}
	}
}

func TestPopulateSparesFirstRoom(t *testing.T) {
	cfg := testConfig(11)
	m, _, _ := Generate(cfg)
	pop := Populate(m, cfg)
	first := m.Rooms[0]
	for _, ms := range pop.Monsters {
		if ms.X > first.X1 && ms.X < first.X2 && ms.Y > first.Y1 && ms.Y < first.Y2 {
			t.Errorf("monster %q spawned in the player's starting room", ms.Entry.Name)
		}
	}
}

func TestPopulateMonstersOnFloor(t *testing.T) {
	cfg := testConfig(3)
	m, _, _ := Generate(cfg)
	pop := Populate(m, cfg)
	for _, ms := range pop.Monsters {
		if !m.IsWalkable(ms.X, ms.Y) {
			t.Errorf("monster %q at (%d,%d) on unwalkable tile", ms.Entry.Name, ms.X, ms.Y)
		}
	}
	for _, is := range pop.Items {
		if !m.IsWalkable(is.X, is.Y) {
			t.Errorf("item %q at (%d,%d) on unwalkable tile", is.Entry.Name, is.X, is.Y)
		}
	}
}
