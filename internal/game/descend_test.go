package game

import (
	"context"
	"testing"

	"undervault/internal/component"
	"undervault/internal/config"
	"undervault/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

func newTestGame(t *testing.T, seed int64) (*Game, tcell.SimulationScreen) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	g := NewWithScreen(ss, config.Config{FOVRadius: 8, Seed: seed})
	g.startSession()
	return g, ss
}

func (g *Game) setFighter(t *testing.T, mutate func(*component.Fighter)) component.Fighter {
	t.Helper()
	f := g.playerFighter()
	mutate(&f)
	g.world.Add(g.playerID, f)
	return f
}

func TestDescendKeepsPlayerIdentity(t *testing.T) {
	g, _ := newTestGame(t, 11)
	id := g.playerID

	for i := 0; i < 5; i++ {
		g.descend(context.Background())
	}

	if g.playerID != id {
		t.Fatalf("player handle changed across descents: %d -> %d", id, g.playerID)
	}
	if !g.world.Alive(id) {
		t.Fatal("player entity missing after descents")
	}
	if !g.world.Has(id, component.CFighter) || !g.world.Has(id, component.CLevel) {
		t.Fatal("player lost components across descents")
	}
}

func TestDescendHealsHalfOfMax(t *testing.T) {
	tests := []struct {
		name      string
		maxHP, hp int
		want      int
	}{
		{"even max", 30, 4, 19},
		{"odd max rounds down", 31, 4, 19},
		{"saturates at max", 30, 28, 30},
		{"full health stays full", 30, 30, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, 11)
			g.setFighter(t, func(f *component.Fighter) {
				f.MaxHP = tt.maxHP
				f.HP = tt.hp
			})

			g.descend(context.Background())

			if got := g.playerFighter().HP; got != tt.want {
				t.Errorf("HP after descent = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDescendPurgesOutgoingLevel(t *testing.T) {
	g, _ := newTestGame(t, 11)

	var outgoing []ecs.EntityID
	for _, id := range g.world.Query(component.CPosition) {
		if id != g.playerID {
			outgoing = append(outgoing, id)
		}
	}
	if len(outgoing) == 0 {
		t.Fatal("expected the first level to have occupants")
	}

	g.descend(context.Background())

	for _, id := range outgoing {
		if g.world.Alive(id) {
			t.Errorf("entity %d from the previous level survived the descent", id)
		}
	}
	// The new level has at least the player and its stairs.
	if n := g.world.Count(); n < 2 {
		t.Errorf("world holds %d entities after descent, want at least 2", n)
	}
}

func TestDescendIncrementsDepth(t *testing.T) {
	g, _ := newTestGame(t, 11)
	for want := 2; want <= 4; want++ {
		g.descend(context.Background())
		if g.depth != want {
			t.Fatalf("depth = %d, want %d", g.depth, want)
		}
	}
}

func TestDescendReplacesMap(t *testing.T) {
	g, _ := newTestGame(t, 11)
	old := g.gmap

	g.descend(context.Background())

	if g.gmap == old {
		t.Fatal("descent reused the outgoing level's map")
	}
	pos := g.playerPosition()
	if !g.gmap.IsWalkable(pos.X, pos.Y) {
		t.Errorf("player placed on unwalkable tile (%d, %d)", pos.X, pos.Y)
	}
	if !g.gmap.IsVisible(pos.X, pos.Y) {
		t.Error("field of view not recomputed for the new level")
	}
}

func TestDescendPanicsWithDeadPlayer(t *testing.T) {
	g, _ := newTestGame(t, 11)
	g.setFighter(t, func(f *component.Fighter) {
		f.HP = 0
		f.Alive = false
	})

	defer func() {
		if recover() == nil {
			t.Fatal("descend with a dead player did not panic")
		}
	}()
	g.descend(context.Background())
}

func TestDescendRequiresStairs(t *testing.T) {
	g, _ := newTestGame(t, 11)

	// The player spawns in the first room; the stairs are in the last.
	if g.stairsHere() {
		t.Skip("player spawned on the stairs")
	}
	g.processAction(context.Background(), ActionDescend)
	if g.depth != 1 {
		t.Fatalf("descended without stairs: depth = %d", g.depth)
	}

	stairs := g.world.Query(component.CTagStairs, component.CPosition)
	if len(stairs) != 1 {
		t.Fatalf("level has %d stairs, want 1", len(stairs))
	}
	spos := g.world.Get(stairs[0], component.CPosition).(component.Position)
	g.world.Add(g.playerID, spos)

	g.processAction(context.Background(), ActionDescend)
	if g.depth != 2 {
		t.Fatalf("standing on stairs: depth = %d, want 2", g.depth)
	}
}
