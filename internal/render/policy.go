package render

import (
	"undervault/internal/component"
	"undervault/internal/ecs"
	"undervault/internal/gamemap"
)

// Drawable is the render-candidate rule: an entity is drawn when its tile is
// in the live field of view, or when the entity is flagged always-visible and
// its tile has been explored. Pure — no entity state is touched, and an
// undrawable entity is still fully simulated.
func Drawable(alwaysVisible bool, x, y int, m *gamemap.GameMap) bool {
	if m.IsVisible(x, y) {
		return true
	}
	return alwaysVisible && m.IsExplored(x, y)
}

// EntityDrawable applies Drawable to a world entity. Entities without
// position or renderable never draw.
func EntityDrawable(w *ecs.World, id ecs.EntityID, m *gamemap.GameMap) bool {
	pc := w.Get(id, component.CPosition)
	rc := w.Get(id, component.CRenderable)
	if pc == nil || rc == nil {
		return false
	}
	pos := pc.(component.Position)
	return Drawable(rc.(component.Renderable).AlwaysVisible, pos.X, pos.Y, m)
}
