package component

import "undervault/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 7
	CTagBlocking ecs.ComponentType = 8
	CTagStairs   ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }

// TagStairs marks the staircase entity that triggers descent.
type TagStairs struct{}

func (TagStairs) Type() ecs.ComponentType { return CTagStairs }
