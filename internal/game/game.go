// Package game owns the session: the world, the loop, level transitions, and
// the interactive surfaces around the progression machine.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"undervault/internal/component"
	"undervault/internal/config"
	"undervault/internal/ecs"
	"undervault/internal/factory"
	"undervault/internal/gamemap"
	"undervault/internal/generate"
	"undervault/internal/progression"
	"undervault/internal/render"
	"undervault/internal/system"
	"undervault/internal/telemetry"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
)

// Game is the top-level orchestrator. The world and dungeon state are owned
// exclusively by the loop that drives Run; nothing mutates them from outside.
type Game struct {
	screen    tcell.Screen
	renderer  *render.Renderer
	world     *ecs.World
	gmap      *gamemap.GameMap
	playerID  ecs.EntityID
	rng       *rand.Rand
	depth     int
	state     GameState
	messages  []string
	machine   progression.Machine
	fovRadius int
	runLog    RunLog
	tracer    trace.Tracer
}

// New creates a Game on a freshly initialized local terminal screen.
func New(cfg config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg), nil
}

// NewWithScreen creates a Game on an existing screen (SSH sessions, tests).
func NewWithScreen(screen tcell.Screen, cfg config.Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		screen:    screen,
		rng:       rand.New(rand.NewSource(seed)),
		fovRadius: cfg.FOVRadius,
		tracer:    telemetry.Tracer("game"),
	}
}

// startSession builds a fresh world with the player seeded into depth 1.
func (g *Game) startSession() {
	g.depth = 1
	g.state = StatePlaying
	g.messages = nil
	g.machine = progression.Machine{}
	g.runLog = newRunLog()
	if g.fovRadius == 0 {
		g.fovRadius = 8
	}

	g.world = ecs.NewWorld()
	cfg := levelConfig(1, g.rng)
	m, px, py := generate.Generate(cfg)
	g.gmap = m
	g.playerID = factory.NewPlayer(g.world, px, py)
	g.spawnOccupants(m, cfg)

	system.UpdateFOV(g.gmap, px, py, g.fovRadius)
	g.renderer = render.NewRenderer(g.screen, g.depth)
	g.renderer.CenterOn(px, py)
}

// spawnOccupants appends the generator's monsters, items, and stairs to the
// world. The player is never touched.
func (g *Game) spawnOccupants(m *gamemap.GameMap, cfg *generate.Config) {
	pop := generate.Populate(m, cfg)
	for _, ms := range pop.Monsters {
		factory.NewMonster(g.world, ms.Entry, ms.X, ms.Y)
	}
	for _, is := range pop.Items {
		factory.NewItem(g.world, is.Entry, is.X, is.Y)
	}
	factory.NewStairs(g.world, pop.Stairs.X, pop.Stairs.Y)
}

// descend is the level transition. It runs to completion before the next
// input is read: rest-heal, purge, deeper depth, fresh level, fresh FOV. The
// outgoing level's entities and explored-tile memory are discarded for good.
func (g *Game) descend(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "descend",
		trace.WithAttributes(attribute.Int("depth.from", g.depth)))
	defer span.End()

	f := g.playerFighter()
	healed := f.Heal(f.MaxHP / 2)
	g.world.Add(g.playerID, f)
	g.addMessage(fmt.Sprintf("You take a moment to rest and recover %d HP.", healed))

	// The purge must never run without a living player to keep.
	if !f.Alive {
		panic("game: descend with a dead player")
	}
	g.world.PurgeExcept(g.playerID)

	g.depth++
	if g.depth > g.runLog.Depth {
		g.runLog.Depth = g.depth
	}

	cfg := levelConfig(g.depth, g.rng)
	m, px, py := generate.Generate(cfg)
	g.gmap = m
	g.world.Add(g.playerID, component.Position{X: px, Y: py})
	g.spawnOccupants(m, cfg)

	system.UpdateFOV(g.gmap, px, py, g.fovRadius)
	g.renderer.SetDepth(g.depth)
	g.addMessage(fmt.Sprintf("You descend deeper into the Undervault (depth %d).", g.depth))

	span.SetAttributes(attribute.Int("depth.to", g.depth))
}

// stairsHere reports whether a stairs entity shares the player's tile.
func (g *Game) stairsHere() bool {
	pos := g.playerPosition()
	for _, id := range g.world.Query(component.CTagStairs, component.CPosition) {
		spos := g.world.Get(id, component.CPosition).(component.Position)
		if spos == pos {
			return true
		}
	}
	return false
}

// Run is the main loop. Supports consecutive runs via the end screen.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()

	for {
		g.startSession()
		g.addMessage("You enter the Undervault. Move with hjkl or arrows, > descends.")

		for g.state == StatePlaying {
			pos := g.playerPosition()
			g.renderer.CenterOn(pos.X, pos.Y)
			g.renderer.DrawFrame(g.world, g.gmap)
			g.renderer.DrawHUD(g.world, g.playerID, g.depth, g.messages)

			ev := g.screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				continue
			case *tcell.EventKey:
				action := keyToAction(ev)
				if action == ActionQuit {
					return
				}
				g.processAction(ctx, action)
			}
		}

		g.saveRunLog()
		if !g.showEndScreen() {
			return
		}
	}
}

// processAction handles one player action. A turn-consuming action gives the
// monsters their tick; experience crediting for the whole tick finishes
// before the progression machine is evaluated.
func (g *Game) processAction(ctx context.Context, action Action) {
	turnUsed := false

	switch action {
	case ActionWait:
		turnUsed = true

	case ActionDescend:
		if g.stairsHere() {
			g.descend(ctx)
			return
		}
		g.addMessage("There are no stairs here.")

	case ActionPickup:
		turnUsed = g.tryPickup()

	default:
		dx, dy := actionToDelta(action)
		if dx == 0 && dy == 0 {
			break
		}
		result, target := system.TryMove(g.world, g.gmap, g.playerID, dx, dy)
		switch result {
		case system.MoveOK:
			turnUsed = true
			pos := g.playerPosition()
			system.UpdateFOV(g.gmap, pos.X, pos.Y, g.fovRadius)
		case system.MoveAttack:
			// Capture the name before the corpse glyph swap.
			name := g.entityName(target)
			res := system.Attack(g.world, g.rng, g.playerID, target)
			if res.Killed {
				g.runLog.Kills[name]++
				g.runLog.XPEarned += res.XPGained
				g.addMessage(fmt.Sprintf("You kill the %s for %d XP!", name, res.XPGained))
			} else {
				g.addMessage(fmt.Sprintf("You hit the %s for %d damage.", name, res.Damage))
			}
			turnUsed = true
		case system.MoveBlocked:
			// no message for walking into walls
		}
	}

	if turnUsed {
		g.runLog.Turns++
		hits := system.ProcessMonsters(g.world, g.gmap, g.playerID, g.rng)
		for _, h := range hits {
			g.addMessage(fmt.Sprintf("The %s hits you for %d damage.", h.Name, h.Damage))
			if h.Killed {
				g.runLog.CauseOfDeath = h.Name
			}
		}
		g.checkPlayerDead()
	}

	if g.state == StatePlaying {
		g.runProgression(ctx)
	}
}

// tryPickup consumes an item on the player's tile. Returns whether a turn
// was spent.
func (g *Game) tryPickup() bool {
	pos := g.playerPosition()
	for _, id := range g.world.Query(component.CItem, component.CPosition) {
		ipos := g.world.Get(id, component.CPosition).(component.Position)
		if ipos != pos {
			continue
		}
		item := g.world.Get(id, component.CItem).(component.Item)
		g.world.DestroyEntity(id)
		g.applyItem(item)
		return true
	}
	g.addMessage("Nothing to pick up here.")
	return false
}

// applyItem resolves a pickup immediately — potions heal, runes detonate.
func (g *Game) applyItem(item component.Item) {
	switch item.Kind {
	case component.ItemPotion:
		f := g.playerFighter()
		healed := f.Heal(item.Magnitude)
		g.world.Add(g.playerID, f)
		g.addMessage(fmt.Sprintf("The %s restores %d HP.", item.Name, healed))

	case component.ItemRune:
		pos := g.playerPosition()
		res := system.Burst(g.world, pos.X, pos.Y, item.Radius, item.Magnitude, g.playerID)
		g.addMessage(fmt.Sprintf("The %s detonates! The blast sears you for %d damage.", item.Name, item.Magnitude))
		for _, k := range res.Kills {
			g.runLog.Kills[k.Name]++
		}
		g.runLog.XPEarned += res.XPGained
		if len(res.Kills) > 0 {
			g.addMessage(fmt.Sprintf("The blast claims %d foes (+%d XP).", len(res.Kills), res.XPGained))
		}
	}
}

func (g *Game) checkPlayerDead() {
	c := g.world.Get(g.playerID, component.CFighter)
	if c == nil || !c.(component.Fighter).Alive {
		g.state = StateDead
		g.addMessage("You die in the dark.")
	}
}

func (g *Game) playerFighter() component.Fighter {
	return g.world.Get(g.playerID, component.CFighter).(component.Fighter)
}

func (g *Game) playerPosition() component.Position {
	c := g.world.Get(g.playerID, component.CPosition)
	if c == nil {
		return component.Position{}
	}
	return c.(component.Position)
}

func (g *Game) entityName(id ecs.EntityID) string {
	rend := g.world.Get(id, component.CRenderable)
	if rend == nil {
		return "creature"
	}
	if name := rend.(component.Renderable).Name; name != "" {
		return name
	}
	return "creature"
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
