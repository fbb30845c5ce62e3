package component

import "undervault/internal/ecs"

const CFighter ecs.ComponentType = 2

// Fighter is the combat profile of an entity. Alive is the combat liveness
// flag: a dead fighter stays in the world as a corpse and must never yield
// experience again. XP is the running experience ledger — monsters accrue it
// through the same crediting path as the player, though nothing spends theirs.
// XPYield is set at creation and never changes.
type Fighter struct {
	HP      int
	MaxHP   int
	Power   int
	Defense int
	Alive   bool
	XP      int
	XPYield int
}

func (Fighter) Type() ecs.ComponentType { return CFighter }

// Heal raises HP by n, saturating at MaxHP, and returns the amount actually
// applied. Never lowers HP.
func (f *Fighter) Heal(n int) int {
	if n <= 0 || f.HP >= f.MaxHP {
		return 0
	}
	applied := n
	if f.HP+applied > f.MaxHP {
		applied = f.MaxHP - f.HP
	}
	f.HP += applied
	return applied
}
