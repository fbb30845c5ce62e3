package component

import (
	"undervault/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// Renderable describes how an entity is drawn and named in messages.
// AlwaysVisible entities (stairs, dropped items) remain drawable on explored
// tiles outside the live FOV.
type Renderable struct {
	Name          string
	Glyph         string
	FGColor       tcell.Color
	BGColor       tcell.Color
	RenderOrder   int
	AlwaysVisible bool
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
