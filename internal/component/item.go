package component

import "undervault/internal/ecs"

const CItem ecs.ComponentType = 6

// ItemKind selects what happens when the player picks an item up.
type ItemKind uint8

const (
	ItemPotion ItemKind = iota // heals on pickup
	ItemRune                   // detonates a burst centered on the player
)

// Item is a floor pickup. Magnitude is HP restored for potions, or damage
// dealt for runes.
type Item struct {
	Name      string
	Kind      ItemKind
	Magnitude int
	Radius    int // rune blast radius in tiles
}

func (Item) Type() ecs.ComponentType { return CItem }
