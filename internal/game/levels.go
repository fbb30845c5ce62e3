package game

import (
	"math"
	"math/rand"

	"undervault/assets"
	"undervault/internal/generate"
)

// depthSpan is the depth at which generation parameters stop scaling up.
const depthSpan = 12

// levelConfig builds a generate.Config for the given depth. Maps grow and
// fill up as the player descends; there is no bottom.
func levelConfig(depth int, rng *rand.Rand) *generate.Config {
	t := float64(depth-1) / float64(depthSpan-1)
	if t > 1 {
		t = 1
	}

	return &generate.Config{
		MapWidth:           lerpi(50, 80, t),
		MapHeight:          lerpi(24, 40, t),
		MaxRooms:           lerpi(10, 18, t),
		MinRoomSize:        4,
		MaxRoomSize:        8,
		MaxMonstersPerRoom: lerpi(1, 3, t),
		MaxItemsPerRoom:    1,
		Depth:              depth,
		MonsterTable:       assets.MonstersForDepth(depth),
		ItemTable:          assets.ItemsForDepth(depth),
		Rand:               rng,
	}
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
