package generate

import (
	"math/rand"

	"undervault/assets"
	"undervault/internal/gamemap"
)

// SpawnPoint holds a world coordinate where an entity should appear.
type SpawnPoint struct {
	X, Y int
}

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Entry assets.MonsterEntry
	X, Y  int
}

// ItemSpawn describes one item to create.
type ItemSpawn struct {
	Entry assets.ItemEntry
	X, Y  int
}

// PopulateResult is returned by Populate with entity spawn data. Stairs is
// always set — every level has exactly one way down.
type PopulateResult struct {
	Monsters []MonsterSpawn
	Items    []ItemSpawn
	Stairs   SpawnPoint
}

// Populate places monsters and items in the generated rooms and picks the
// stairs location. The first room is the player spawn and stays empty of
// monsters; the stairs land in the last room's center.
func Populate(m *gamemap.GameMap, cfg *Config) PopulateResult {
	var result PopulateResult

	last := m.Rooms[len(m.Rooms)-1]
	result.Stairs.X, result.Stairs.Y = last.Center()

	for i, room := range m.Rooms {
		if i == 0 {
			continue
		}
		taken := map[[2]int]bool{}

		if len(cfg.MonsterTable) > 0 {
			n := cfg.Rand.Intn(cfg.MaxMonstersPerRoom + 1)
			for j := 0; j < n; j++ {
				x, y, ok := randomFloor(m, room, cfg.Rand, taken)
				if !ok {
					break
				}
				taken[[2]int{x, y}] = true
				entry := pickMonster(cfg.MonsterTable, cfg.Rand)
				result.Monsters = append(result.Monsters, MonsterSpawn{Entry: entry, X: x, Y: y})
			}
		}

		if len(cfg.ItemTable) > 0 {
			n := cfg.Rand.Intn(cfg.MaxItemsPerRoom + 1)
			for j := 0; j < n; j++ {
				x, y, ok := randomFloor(m, room, cfg.Rand, taken)
				if !ok {
					break
				}
				taken[[2]int{x, y}] = true
				entry := pickItem(cfg.ItemTable, cfg.Rand)
				result.Items = append(result.Items, ItemSpawn{Entry: entry, X: x, Y: y})
			}
		}
	}

	return result
}

// randomFloor tries a handful of times to find an unclaimed walkable tile
// inside the room.
func randomFloor(m *gamemap.GameMap, room gamemap.Rect, rng *rand.Rand, taken map[[2]int]bool) (int, int, bool) {
	for tries := 0; tries < 10; tries++ {
		x := room.X1 + 1 + rng.Intn(room.X2-room.X1-1)
		y := room.Y1 + 1 + rng.Intn(room.Y2-room.Y1-1)
		if m.IsWalkable(x, y) && !taken[[2]int{x, y}] {
			return x, y, true
		}
	}
	return 0, 0, false
}

func pickMonster(table []assets.MonsterEntry, rng *rand.Rand) assets.MonsterEntry {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	roll := rng.Intn(total)
	for _, e := range table {
		roll -= e.Weight
		if roll < 0 {
			return e
		}
	}
	return table[len(table)-1]
}

func pickItem(table []assets.ItemEntry, rng *rand.Rand) assets.ItemEntry {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	roll := rng.Intn(total)
	for _, e := range table {
		roll -= e.Weight
		if roll < 0 {
			return e
		}
	}
	return table[len(table)-1]
}
