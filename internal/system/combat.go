package system

import (
	"math/rand"

	"undervault/internal/component"
	"undervault/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage   int
	Killed   bool
	XPGained int // yield credited to the attacker; zero unless Killed
}

// ApplyDamage subtracts amount from the target's HP. If the target dies, its
// liveness flag flips and its experience yield is returned with ok=true —
// exactly once per target lifetime; a dead target absorbs further damage
// without yielding. The flag flip and the yield report are one operation, so
// no caller can observe a kill without consuming the yield.
func ApplyDamage(w *ecs.World, target ecs.EntityID, amount int) (yield int, ok bool) {
	c := w.Get(target, component.CFighter)
	if c == nil {
		return 0, false
	}
	f := c.(component.Fighter)
	if !f.Alive {
		return 0, false
	}

	f.HP -= amount
	if f.HP > 0 {
		w.Add(target, f)
		return 0, false
	}

	f.HP = 0
	f.Alive = false
	w.Add(target, f)
	markCorpse(w, target)
	return f.XPYield, true
}

// markCorpse turns a dead entity into scenery: it stops blocking and acting,
// and renders as remains beneath live actors. The entity stays in the world
// until the next level transition discards it.
func markCorpse(w *ecs.World, id ecs.EntityID) {
	w.Remove(id, component.CTagBlocking)
	w.Remove(id, component.CAI)
	if c := w.Get(id, component.CRenderable); c != nil {
		r := c.(component.Renderable)
		r.Glyph = "%"
		r.FGColor = tcell.ColorDarkRed
		r.RenderOrder = 0
		w.Add(id, r)
	}
}

// Attack resolves one melee attack from attacker against defender.
// Damage formula: max(1, power-defense) + rand.Intn(3). A kill credits the
// defender's yield to the attacker's ledger — uniformly for player and
// monster attackers; nothing ever spends a monster's ledger.
func Attack(w *ecs.World, rng *rand.Rand, attacker, defender ecs.EntityID) AttackResult {
	atkComp := w.Get(attacker, component.CFighter)
	defComp := w.Get(defender, component.CFighter)
	if atkComp == nil || defComp == nil {
		return AttackResult{}
	}

	atk := atkComp.(component.Fighter)
	def := defComp.(component.Fighter)
	base := atk.Power - def.Defense
	if base < 1 {
		base = 1
	}
	dmg := base + rng.Intn(3)

	result := AttackResult{Damage: dmg}
	if yield, killed := ApplyDamage(w, defender, dmg); killed {
		result.Killed = true
		result.XPGained = yield
		creditXP(w, attacker, yield)
	}
	return result
}

// KillRecord names one fatality in a burst.
type KillRecord struct {
	ID    ecs.EntityID
	Name  string
	Yield int
}

// BurstResult summarizes one area detonation.
type BurstResult struct {
	Kills             []KillRecord
	XPGained          int  // total credited to the beneficiary
	BeneficiaryStruck bool // beneficiary took damage
	BeneficiaryKilled bool
}

// Burst applies amount damage to every living fighter within radius of
// (cx, cy) — the beneficiary included — then credits the beneficiary with the
// summed yields of every other fatality. Crediting runs as a second phase
// over collected (id, yield) pairs so the beneficiary's own death never feeds
// its own ledger, and so the ledger is written exactly once per burst.
func Burst(w *ecs.World, cx, cy, radius, amount int, beneficiary ecs.EntityID) BurstResult {
	var result BurstResult
	rsq := radius * radius

	for _, id := range w.Query(component.CFighter, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		dx, dy := pos.X-cx, pos.Y-cy
		if dx*dx+dy*dy > rsq {
			continue
		}
		if !w.Get(id, component.CFighter).(component.Fighter).Alive {
			continue
		}
		if id == beneficiary {
			result.BeneficiaryStruck = true
		}
		name := entityName(w, id) // capture before the corpse glyph swap
		yield, killed := ApplyDamage(w, id, amount)
		if !killed {
			continue
		}
		if id == beneficiary {
			result.BeneficiaryKilled = true
			continue
		}
		result.Kills = append(result.Kills, KillRecord{ID: id, Name: name, Yield: yield})
	}

	for _, k := range result.Kills {
		result.XPGained += k.Yield
	}
	creditXP(w, beneficiary, result.XPGained)
	return result
}

// creditXP adds n to the entity's experience ledger. Dead entities still own
// their ledger — a posthumous burst credit is valid.
func creditXP(w *ecs.World, id ecs.EntityID, n int) {
	if n <= 0 {
		return
	}
	c := w.Get(id, component.CFighter)
	if c == nil {
		return
	}
	f := c.(component.Fighter)
	f.XP += n
	w.Add(id, f)
}

func entityName(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CRenderable); c != nil {
		if name := c.(component.Renderable).Name; name != "" {
			return name
		}
	}
	return "creature"
}
