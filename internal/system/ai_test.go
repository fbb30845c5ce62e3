package system

import (
	"math/rand"
	"testing"

	"undervault/internal/component"
	"undervault/internal/ecs"
)

func newMonster(w *ecs.World, x, y, sight int) ecs.EntityID {
	id := newFighter(w, 10, 4, 0, 35)
	place(w, id, x, y)
	w.Add(id, component.AI{SightRange: sight})
	return id
}

func TestMonsterChasesPlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := ecs.NewWorld()
	m := openMap(20, 20)
	player := newFighter(w, 30, 5, 0, 0)
	place(w, player, 10, 10)
	monster := newMonster(w, 5, 10, 8)

	hits := ProcessMonsters(w, m, player, rng)
	if len(hits) != 0 {
		t.Fatal("monster is not adjacent, no attack expected")
	}
	pos := w.Get(monster, component.CPosition).(component.Position)
	if pos.X != 6 || pos.Y != 10 {
		t.Errorf("monster at (%d,%d), want (6,10) after one chase step", pos.X, pos.Y)
	}
}

func TestMonsterOutOfSightIdles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := ecs.NewWorld()
	m := openMap(30, 30)
	player := newFighter(w, 30, 5, 0, 0)
	place(w, player, 25, 25)
	monster := newMonster(w, 2, 2, 6)

	ProcessMonsters(w, m, player, rng)
	pos := w.Get(monster, component.CPosition).(component.Position)
	if pos.X != 2 || pos.Y != 2 {
		t.Error("monster beyond sight range should not move")
	}
}

func TestAdjacentMonsterAttacks(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := ecs.NewWorld()
	m := openMap(20, 20)
	player := newFighter(w, 30, 5, 2, 0)
	place(w, player, 10, 10)
	newMonster(w, 9, 10, 8)

	hpBefore := fighterOf(t, w, player).HP
	hits := ProcessMonsters(w, m, player, rng)
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	if got := fighterOf(t, w, player).HP; got != hpBefore-hits[0].Damage {
		t.Errorf("player HP %d, want %d", got, hpBefore-hits[0].Damage)
	}
}

func TestDeadMonstersTakeNoTurn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := ecs.NewWorld()
	m := openMap(20, 20)
	player := newFighter(w, 30, 5, 0, 0)
	place(w, player, 10, 10)
	monster := newMonster(w, 9, 10, 8)
	ApplyDamage(w, monster, 100)

	hits := ProcessMonsters(w, m, player, rng)
	if len(hits) != 0 {
		t.Error("a corpse must not attack")
	}
}
