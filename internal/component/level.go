package component

import "undervault/internal/ecs"

const CLevel ecs.ComponentType = 4

// Level is the character level counter, starting at 1. Every fighter carries
// one, but only the player's is consumed by progression.
type Level struct {
	Value int
}

func (Level) Type() ecs.ComponentType { return CLevel }
