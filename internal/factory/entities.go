// Package factory constructs the game's entities with their standard
// component sets.
package factory

import (
	"undervault/assets"
	"undervault/internal/component"
	"undervault/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Player starting stats.
const (
	PlayerStartHP      = 30
	PlayerStartPower   = 5
	PlayerStartDefense = 2
)

// NewPlayer creates the player entity at (x, y). The returned ID is the
// stable handle the session holds for its whole lifetime.
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Fighter{
		HP:      PlayerStartHP,
		MaxHP:   PlayerStartHP,
		Power:   PlayerStartPower,
		Defense: PlayerStartDefense,
		Alive:   true,
	})
	w.Add(id, component.Level{Value: 1})
	w.Add(id, component.Renderable{
		Name:        "adventurer",
		Glyph:       "@",
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 10,
	})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewMonster creates a monster entity from a spawn table entry.
func NewMonster(w *ecs.World, entry assets.MonsterEntry, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Fighter{
		HP:      entry.HP,
		MaxHP:   entry.HP,
		Power:   entry.Power,
		Defense: entry.Defense,
		Alive:   true,
		XPYield: entry.XP,
	})
	w.Add(id, component.Level{Value: 1})
	w.Add(id, component.Renderable{
		Name:        entry.Name,
		Glyph:       entry.Glyph,
		FGColor:     tcell.ColorRed,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 5,
	})
	w.Add(id, component.AI{SightRange: entry.Sight})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewItem creates a floor pickup from a spawn table entry. Items stay
// drawable on explored tiles even outside the live FOV.
func NewItem(w *ecs.World, entry assets.ItemEntry, x, y int) ecs.EntityID {
	kind := component.ItemPotion
	if entry.Kind == "rune" {
		kind = component.ItemRune
	}
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Item{
		Name:      entry.Name,
		Kind:      kind,
		Magnitude: entry.Magnitude,
		Radius:    entry.Radius,
	})
	w.Add(id, component.Renderable{
		Name:          entry.Name,
		Glyph:         entry.Glyph,
		FGColor:       tcell.ColorGreen,
		BGColor:       tcell.ColorDefault,
		RenderOrder:   2,
		AlwaysVisible: true,
	})
	return id
}

// NewStairs creates the descent staircase. Like items, stairs stay drawable
// once their tile has been explored.
func NewStairs(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Name:          "staircase",
		Glyph:         ">",
		FGColor:       tcell.ColorWhite,
		BGColor:       tcell.ColorDefault,
		RenderOrder:   1,
		AlwaysVisible: true,
	})
	w.Add(id, component.TagStairs{})
	return id
}
