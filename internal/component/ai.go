package component

import "undervault/internal/ecs"

const CAI ecs.ComponentType = 5

// AI marks a monster that chases and attacks the player when in sight.
type AI struct {
	SightRange int
}

func (AI) Type() ecs.ComponentType { return CAI }
