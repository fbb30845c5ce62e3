package render

import (
	"sort"

	"undervault/assets"
	"undervault/internal/component"
	"undervault/internal/ecs"
	"undervault/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of bottom rows reserved for the status display.
const hudRows = 5

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	depth  int // 1-based dungeon depth, drives the palette
}

// NewRenderer creates a Renderer for the given screen and depth.
func NewRenderer(screen tcell.Screen, depth int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows),
		depth:  depth,
	}
}

// SetDepth updates the palette depth.
func (r *Renderer) SetDepth(depth int) { r.depth = depth }

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawFrame renders tiles and drawable entities.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(m)
	r.drawEntities(w, m)
}

// drawMap renders all visible or remembered tiles with the depth tint.
func (r *Renderer) drawMap(m *gamemap.GameMap) {
	wall := assets.WallColor(r.depth)
	floor := assets.FloorColor(r.depth)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}

			var glyph rune
			var fg tcell.Color
			switch tile.Kind {
			case gamemap.TileWall:
				glyph, fg = '#', wall
			default:
				glyph, fg = '.', floor
			}
			if !tile.Visible {
				fg = assets.Dim(fg)
			}
			r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders drawable entities ordered by RenderOrder.
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.GameMap) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		if !EntityDrawable(w, id, m) {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	// Lower order draws first, ending up behind.
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		fg := e.rend.FGColor
		if !m.IsVisible(e.pos.X, e.pos.Y) {
			// Remembered always-visible entities render dimmed.
			fg = assets.Dim(fg)
		}
		style := tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or wider) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
