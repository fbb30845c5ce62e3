// Package generate builds dungeon levels: a room-and-corridor map plus spawn
// placements for the level's occupants. It never touches existing entities —
// callers seed the world with the player and append what Populate returns.
package generate

import (
	"math/rand"

	"undervault/assets"
	"undervault/internal/gamemap"
)

// Config controls one level's generation.
type Config struct {
	MapWidth  int
	MapHeight int

	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int

	MaxMonstersPerRoom int
	MaxItemsPerRoom    int

	Depth        int
	MonsterTable []assets.MonsterEntry
	ItemTable    []assets.ItemEntry

	Rand *rand.Rand
}

// Generate carves a fresh map and returns it with the player spawn point.
// Rooms are scattered rects; overlapping candidates are discarded and each
// accepted room is tunneled to the previous one.
func Generate(cfg *Config) (m *gamemap.GameMap, px, py int) {
	m = gamemap.New(cfg.MapWidth, cfg.MapHeight)

	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.MinRoomSize + cfg.Rand.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + cfg.Rand.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		x := cfg.Rand.Intn(cfg.MapWidth - w - 1)
		y := cfg.Rand.Intn(cfg.MapHeight - h - 1)
		room := gamemap.Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}

		overlaps := false
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)
		if len(m.Rooms) > 0 {
			prevX, prevY := m.Rooms[len(m.Rooms)-1].Center()
			cx, cy := room.Center()
			carveCorridor(m, prevX, prevY, cx, cy, cfg.Rand)
		}
		m.Rooms = append(m.Rooms, room)
	}

	if len(m.Rooms) == 0 {
		// Degenerate configs still need somewhere to stand.
		fallback := gamemap.Rect{X1: 1, Y1: 1, X2: 3, Y2: 3}
		carveRoom(m, fallback)
		m.Rooms = append(m.Rooms, fallback)
	}

	px, py = m.Rooms[0].Center()
	return m, px, py
}

// carveRoom digs out the interior of a room, leaving a one-tile wall rim.
func carveRoom(m *gamemap.GameMap, r gamemap.Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			if m.InBounds(x, y) {
				m.Set(x, y, gamemap.MakeFloor())
			}
		}
	}
}
