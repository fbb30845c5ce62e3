// Package progression drives character advancement: experience thresholds
// and the level-up choice cycle. The machine never blocks — when a threshold
// is crossed it hands a pending choice back to the caller, and the game loop
// feeds the selection in whenever its input layer produces one.
package progression

import (
	"errors"

	"undervault/internal/component"
	"undervault/internal/ecs"
)

// Threshold parameters: advancing from level L costs ThresholdBase +
// L*ThresholdFactor experience. Strictly increasing in L.
const (
	ThresholdBase   = 200
	ThresholdFactor = 150
)

// Threshold returns the experience total required to advance from level.
func Threshold(level int) int {
	return ThresholdBase + level*ThresholdFactor
}

// Choice is one of the three stat raises offered on level-up.
type Choice uint8

const (
	ChoiceNone Choice = iota
	ChoiceVitality
	ChoicePower
	ChoiceDefense
)

// Stat gains per choice. Vitality raises current HP along with the maximum.
const (
	VitalityGain = 20
	PowerGain    = 1
	DefenseGain  = 1
)

// Pending describes a level-up awaiting its stat choice.
type Pending struct {
	NewLevel int // level after the increment
	Cost     int // experience that Choose will spend
}

// Machine is the per-session level-up state machine. Zero value is ready.
type Machine struct {
	awaiting bool
	cost     int
}

// ErrNoPending is returned by Choose when no level-up is awaiting a choice.
var ErrNoPending = errors.New("progression: no level-up pending")

// ErrInvalidChoice is returned by Choose for an unknown selection; the caller
// re-prompts. No state is mutated.
var ErrInvalidChoice = errors.New("progression: invalid choice")

// AwaitingChoice reports whether a level-up is waiting on the player.
func (m *Machine) AwaitingChoice() bool { return m.awaiting }

// Evaluate checks the player's ledger against the current-level threshold.
// On a crossing it increments the level immediately, latches the threshold
// cost (computed against the pre-increment level), and returns the pending
// choice. Callers run it in a loop — enough banked experience to cross two
// thresholds produces two pendings, each needing its own Choose.
func (m *Machine) Evaluate(w *ecs.World, playerID ecs.EntityID) (Pending, bool) {
	if m.awaiting {
		return Pending{}, false
	}
	fc := w.Get(playerID, component.CFighter)
	lc := w.Get(playerID, component.CLevel)
	if fc == nil || lc == nil {
		return Pending{}, false
	}
	f := fc.(component.Fighter)
	lvl := lc.(component.Level)

	cost := Threshold(lvl.Value)
	if f.XP < cost {
		return Pending{}, false
	}

	lvl.Value++
	w.Add(playerID, lvl)

	m.awaiting = true
	m.cost = cost
	return Pending{NewLevel: lvl.Value, Cost: cost}, true
}

// Choose spends the latched threshold cost and applies the selected stat.
// Surplus experience carries forward — the ledger is debited, never reset.
func (m *Machine) Choose(w *ecs.World, playerID ecs.EntityID, choice Choice) error {
	if !m.awaiting {
		return ErrNoPending
	}

	fc := w.Get(playerID, component.CFighter)
	if fc == nil {
		return ErrNoPending
	}
	f := fc.(component.Fighter)

	switch choice {
	case ChoiceVitality:
		f.MaxHP += VitalityGain
		f.HP += VitalityGain
	case ChoicePower:
		f.Power += PowerGain
	case ChoiceDefense:
		f.Defense += DefenseGain
	default:
		return ErrInvalidChoice
	}

	f.XP -= m.cost
	w.Add(playerID, f)

	m.awaiting = false
	m.cost = 0
	return nil
}
