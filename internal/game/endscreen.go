package game

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen() bool {
	type killEntry struct {
		name string
		count int
	}
	var kills []killEntry
	totalKills := 0
	for name, cnt := range g.runLog.Kills {
		kills = append(kills, killEntry{name, cnt})
		totalKills += cnt
	}
	sort.Slice(kills, func(i, j int) bool {
		if kills[i].count != kills[j].count {
			return kills[i].count > kills[j].count
		}
		return kills[i].name < kills[j].name
	})

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		label := func(y int, l, v string) {
			g.putText(2, y, l, dim)
			g.putText(22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		g.putText(2, y, "THE UNDERVAULT KEEPS YOU", gold)
		badge := "[DEFEAT]"
		g.putText(sw-len(badge)-1, y, badge, red)
		y += 2

		label(y, "Depth Reached:", fmt.Sprintf("%d", g.runLog.Depth))
		y++
		label(y, "Character Level:", fmt.Sprintf("%d", g.runLog.FinalLevel))
		y++
		label(y, "Turns Survived:", fmt.Sprintf("%d", g.runLog.Turns))
		y++
		label(y, "Experience Earned:", fmt.Sprintf("%d", g.runLog.XPEarned))
		y += 2

		label(y, "Foes Slain:", fmt.Sprintf("%d", totalKills))
		y++
		if len(kills) > 0 {
			breakdown := ""
			for _, e := range kills {
				breakdown += fmt.Sprintf("%s ×%d   ", e.name, e.count)
			}
			runes := []rune(breakdown)
			if max := sw - 6; len(runes) > max {
				runes = runes[:max]
			}
			g.putText(4, y, string(runes), dim)
			y++
		}
		y++

		if g.runLog.CauseOfDeath != "" {
			label(y, "Killed By:", g.runLog.CauseOfDeath)
			y += 2
		}

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Q] Quit", red)

		g.screen.Show()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			continue
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
