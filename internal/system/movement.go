package system

import (
	"undervault/internal/component"
	"undervault/internal/ecs"
	"undervault/internal/gamemap"
)

// MoveResult classifies the outcome of a movement attempt.
type MoveResult uint8

const (
	MoveBlocked MoveResult = iota
	MoveOK
	MoveAttack
)

// TryMove attempts to move entity id by (dx, dy). A blocking entity at the
// destination turns the move into an attack intent — the target ID is
// returned and the mover stays put.
func TryMove(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	for _, other := range w.Query(component.CTagBlocking, component.CPosition) {
		if other == id {
			continue
		}
		otherPos := w.Get(other, component.CPosition).(component.Position)
		if otherPos.X == nx && otherPos.Y == ny {
			return MoveAttack, other
		}
	}

	if !m.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}
