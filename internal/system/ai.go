package system

import (
	"math/rand"

	"undervault/internal/component"
	"undervault/internal/ecs"
	"undervault/internal/gamemap"
)

// MonsterHit describes one monster attack on the player this tick.
type MonsterHit struct {
	Name   string
	Damage int
	Killed bool // the player died to this hit
}

// ProcessMonsters runs one turn for every living AI entity: step toward the
// player when in sight range, attack when adjacent. Kills by monsters credit
// the monster's own ledger through the same Attack path as player kills.
func ProcessMonsters(w *ecs.World, m *gamemap.GameMap, playerID ecs.EntityID, rng *rand.Rand) []MonsterHit {
	ppc := w.Get(playerID, component.CPosition)
	if ppc == nil {
		return nil
	}
	playerPos := ppc.(component.Position)

	var hits []MonsterHit
	for _, id := range w.Query(component.CAI, component.CPosition) {
		ai := w.Get(id, component.CAI).(component.AI)
		pos := w.Get(id, component.CPosition).(component.Position)

		dx, dy := playerPos.X-pos.X, playerPos.Y-pos.Y
		if dx*dx+dy*dy > ai.SightRange*ai.SightRange {
			continue
		}

		stepX, stepY := sign(dx), sign(dy)
		if attacked, res := stepOrAttack(w, m, rng, id, playerID, stepX, stepY); attacked {
			hits = append(hits, MonsterHit{
				Name:   entityName(w, id),
				Damage: res.Damage,
				Killed: res.Killed,
			})
		}
	}
	return hits
}

// stepOrAttack tries the axis-aligned steps toward the target, attacking if
// the player occupies the destination. Diagonal pursuit decomposes into the
// horizontal leg first, matching the corridor-friendly chase of the rest of
// the movement code.
func stepOrAttack(w *ecs.World, m *gamemap.GameMap, rng *rand.Rand, id, playerID ecs.EntityID, stepX, stepY int) (bool, AttackResult) {
	if stepX != 0 {
		result, target := TryMove(w, m, id, stepX, 0)
		if result == MoveAttack && target == playerID {
			return true, Attack(w, rng, id, playerID)
		}
		if result == MoveOK {
			return false, AttackResult{}
		}
	}
	if stepY != 0 {
		result, target := TryMove(w, m, id, 0, stepY)
		if result == MoveAttack && target == playerID {
			return true, Attack(w, rng, id, playerID)
		}
	}
	return false, AttackResult{}
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
