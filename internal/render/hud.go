package render

import (
	"fmt"

	"undervault/internal/component"
	"undervault/internal/ecs"
	"undervault/internal/progression"

	"github.com/gdamore/tcell/v2"
)

// DrawHUD renders the status bar and message log at the bottom of the screen
// and flushes the frame.
func (r *Renderer) DrawHUD(w *ecs.World, playerID ecs.EntityID, depth int, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("Depth: %d", depth)
	if c := w.Get(playerID, component.CFighter); c != nil {
		f := c.(component.Fighter)
		lvl := 1
		if lc := w.Get(playerID, component.CLevel); lc != nil {
			lvl = lc.(component.Level).Value
		}
		status = fmt.Sprintf("HP: %d/%d  ATK:%d DEF:%d  Lv:%d XP:%d/%d  Depth: %d",
			f.HP, f.MaxHP, f.Power, f.Defense, lvl, f.XP, progression.Threshold(lvl), depth)
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Last 3 messages.
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
