package game

import (
	"context"
	"fmt"

	"undervault/internal/progression"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// statOption pairs a progression choice with its menu line.
type statOption struct {
	choice progression.Choice
	label  string
}

var statOptions = []statOption{
	{progression.ChoiceVitality, fmt.Sprintf("Vitality  (+%d max HP)", progression.VitalityGain)},
	{progression.ChoicePower, fmt.Sprintf("Power     (+%d attack)", progression.PowerGain)},
	{progression.ChoiceDefense, fmt.Sprintf("Defense   (+%d defense)", progression.DefenseGain)},
}

// runProgression drains the level-up machine after a tick's crediting is
// done. Each crossed threshold produces its own modal prompt; banking enough
// experience for two levels means choosing twice before play resumes.
func (g *Game) runProgression(ctx context.Context) {
	for {
		pending, ok := g.machine.Evaluate(g.world, g.playerID)
		if !ok {
			return
		}
		_, span := g.tracer.Start(ctx, "levelup",
			trace.WithAttributes(attribute.Int("level", pending.NewLevel)))
		g.addMessage(fmt.Sprintf("Your battle skills grow! You reach level %d.", pending.NewLevel))
		g.promptLevelUp(pending)
		span.End()
	}
}

// promptLevelUp blocks on the stat choice. The interaction is modal: no
// other work happens, there is no timeout, and anything but a valid
// selection re-prompts.
func (g *Game) promptLevelUp(pending progression.Pending) {
	selected := 0
	for {
		g.drawLevelUp(pending, selected)

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				selected = (selected - 1 + len(statOptions)) % len(statOptions)
			case tcell.KeyDown:
				selected = (selected + 1) % len(statOptions)
			case tcell.KeyEnter:
				if g.applyChoice(statOptions[selected]) {
					return
				}
			}
			switch ev.Rune() {
			case 'k', 'K':
				selected = (selected - 1 + len(statOptions)) % len(statOptions)
			case 'j', 'J':
				selected = (selected + 1) % len(statOptions)
			case '1', '2', '3':
				idx := int(ev.Rune() - '1')
				if g.applyChoice(statOptions[idx]) {
					return
				}
			}
		}
	}
}

// applyChoice feeds the selection to the machine. A rejected choice keeps
// the modal open.
func (g *Game) applyChoice(opt statOption) bool {
	if err := g.machine.Choose(g.world, g.playerID, opt.choice); err != nil {
		return false
	}
	g.addMessage(fmt.Sprintf("You choose %s.", opt.label))
	return true
}

// drawLevelUp renders the choice menu over the playfield.
func (g *Game) drawLevelUp(pending progression.Pending, selected int) {
	g.screen.Clear()
	w, _ := g.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)

	centerText := func(y int, text string, style tcell.Style) {
		x := (w - len([]rune(text))) / 2
		if x < 0 {
			x = 0
		}
		g.putText(x, y, text, style)
	}

	centerText(2, fmt.Sprintf("LEVEL %d", pending.NewLevel), titleStyle)
	centerText(3, "Choose a boon to carry deeper", dimStyle)

	startY := 6
	for i, opt := range statOptions {
		style := normalStyle
		prefix := "  "
		if i == selected {
			style = highlightStyle
			prefix = "► "
		}
		g.putText(8, startY+i*2, fmt.Sprintf("%s[%d] %s", prefix, i+1, opt.label), style)
	}

	centerText(startY+len(statOptions)*2+2, "[j/k or ↑/↓] Navigate   [1-3] Quick-select   [Enter] Confirm", dimStyle)
	g.screen.Show()
}
