package arcade

import (
	"math"
	"testing"
)

const step = 0.02

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestStepAppliesGravityThenVelocity(t *testing.T) {
	w := NewWorld(800, 1000)
	g := w.NewGroup(GroupConfig{Kind: "dude", W: 32, H: 48, GravityY: 800, AllowGravity: true})
	b := g.Create(400, 500)

	w.Step(step)

	if !near(b.VY, 16) {
		t.Errorf("VY = %v, expected 16", b.VY)
	}
	if !near(b.Y, 500.32) {
		t.Errorf("Y = %v, expected 500.32", b.Y)
	}
}

func TestCollideRestsOnImmovable(t *testing.T) {
	w := NewWorld(800, 1000)
	players := w.NewGroup(GroupConfig{Kind: "dude", W: 32, H: 48, GravityY: 800, AllowGravity: true})
	ground := w.NewGroup(GroupConfig{Kind: "ground", W: 400, H: 32, Immovable: true})
	w.Collide(players, ground, "")

	tile := ground.Create(400, 500)
	p := players.Create(400, tile.Top()-24)

	for i := 0; i < 10; i++ {
		events := w.Step(step)
		if len(events) != 0 {
			t.Fatalf("collider without key should not report events, got %d", len(events))
		}
		if !p.Touching.Down {
			t.Fatalf("step %d: expected player to touch down", i)
		}
	}

	if !near(p.Bottom(), tile.Top()) {
		t.Errorf("player bottom = %v, expected %v", p.Bottom(), tile.Top())
	}
	if !near(tile.Y, 500) {
		t.Errorf("immovable tile moved to %v", tile.Y)
	}
	if !tile.Touching.Up {
		t.Error("tile should record contact on its top side")
	}
}

func TestCollideCarriesBodyOnMovingImmovable(t *testing.T) {
	w := NewWorld(800, 1000)
	items := w.NewGroup(GroupConfig{Kind: "coin", W: 24, H: 24, VelocityY: 150})
	ground := w.NewGroup(GroupConfig{Kind: "ground", W: 400, H: 32, Immovable: true})
	w.Collide(items, ground, "")

	tile := ground.Create(400, 500)
	tile.VY = 50
	coin := items.Create(400, tile.Top()-12-1)

	w.Step(step)

	if !near(coin.VY, 50) {
		t.Errorf("coin VY = %v, expected to match tile speed 50", coin.VY)
	}
	if !near(coin.Bottom(), tile.Top()) {
		t.Errorf("coin bottom = %v, expected %v", coin.Bottom(), tile.Top())
	}
}

func TestWorldBoundsBounce(t *testing.T) {
	tests := []struct {
		name   string
		y, vy  float64
		wantY  float64
		wantVY float64
	}{
		{"top edge", 0, 150, 7, 150},
		{"bottom edge", 995, 300, 993, -300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(800, 1000)
			g := w.NewGroup(GroupConfig{Kind: "enemy", W: 14, H: 14, Bounce: 1, CollideWorldBounds: true})
			b := g.Create(100, tc.y)
			b.VY = tc.vy

			w.Step(step)

			if !near(b.Y, tc.wantY) || !near(b.VY, tc.wantVY) {
				t.Errorf("got (Y=%v, VY=%v), expected (Y=%v, VY=%v)", b.Y, b.VY, tc.wantY, tc.wantVY)
			}
		})
	}
}

func TestOutOfBoundsKill(t *testing.T) {
	w := NewWorld(800, 1000)
	g := w.NewGroup(GroupConfig{Kind: "bullet", W: 8, H: 16, OutOfBoundsKill: true})

	inside := g.Create(100, 5)
	inside.VY = -400
	gone := g.Create(200, -5)
	gone.VY = -400

	w.Step(step)

	if !inside.Active {
		t.Error("bullet still overlapping the world should stay active")
	}
	if gone.Active || gone.Visible || gone.Enabled {
		t.Error("bullet fully above the world should be killed and hidden")
	}
}

func TestKillBelow(t *testing.T) {
	tests := []struct {
		name   string
		y, vy  float64
		killed bool
	}{
		{"sinking past the bottom edge", 1020, 50, true},
		{"resting below the world", 1100, 0, true},
		{"still overlapping the bottom edge", 990, 50, false},
		{"rising back into the world", 1100, -300, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(800, 1000)
			g := w.NewGroup(GroupConfig{Kind: "ground", W: 400, H: 32, Immovable: true, KillBelow: true})
			b := g.Create(400, tc.y)
			b.VY = tc.vy

			w.Step(step)

			if b.Enabled == tc.killed {
				t.Errorf("enabled = %v at Y=%v, expected killed=%v", b.Enabled, b.Y, tc.killed)
			}
			if tc.killed && (b.Visible || g.CountEnabled() != 0) {
				t.Error("a killed body should be hidden and leave the enabled list")
			}
			if g.Len() != 1 {
				t.Errorf("killing should keep the slot, Len=%d", g.Len())
			}
		})
	}
}

func TestOverlapReportsWithoutSeparating(t *testing.T) {
	w := NewWorld(800, 1000)
	players := w.NewGroup(GroupConfig{Kind: "dude", W: 32, H: 48})
	stars := w.NewGroup(GroupConfig{Kind: "star", W: 24, H: 22})
	w.Overlap(players, stars, "collect")

	p := players.Create(400, 500)
	s := stars.Create(405, 505)

	events := w.Step(step)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Relation != RelationOverlap || ev.Key != "collect" || ev.A != p || ev.B != s {
		t.Errorf("unexpected event %+v", ev)
	}
	if p.X != 400 || p.Y != 500 || s.X != 405 || s.Y != 505 {
		t.Error("overlap must not move bodies")
	}
}

func TestStepEventOrderFollowsRegistration(t *testing.T) {
	w := NewWorld(800, 1000)
	players := w.NewGroup(GroupConfig{Kind: "dude", W: 32, H: 48})
	stars := w.NewGroup(GroupConfig{Kind: "star", W: 24, H: 22})
	enemies := w.NewGroup(GroupConfig{Kind: "enemy", W: 14, H: 14})

	w.Overlap(players, enemies, "enemy")
	w.Overlap(players, stars, "star")

	players.Create(400, 500)
	stars.Create(400, 500)
	stars.Create(410, 500)
	enemies.Create(400, 500)

	events := w.Step(step)

	want := []string{"enemy", "star", "star"}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, key := range want {
		if events[i].Key != key {
			t.Errorf("event %d key = %q, expected %q", i, events[i].Key, key)
		}
	}
}

func TestDisabledBodiesAreIgnored(t *testing.T) {
	w := NewWorld(800, 1000)
	players := w.NewGroup(GroupConfig{Kind: "dude", W: 32, H: 48})
	stars := w.NewGroup(GroupConfig{Kind: "star", W: 24, H: 22, VelocityY: 300})
	w.Overlap(players, stars, "collect")

	players.Create(400, 500)
	s := stars.Create(400, 500)
	s.Disable(true)

	if events := w.Step(step); len(events) != 0 {
		t.Errorf("disabled star should not be reported, got %d events", len(events))
	}
	if s.Y != 500 {
		t.Error("disabled body should not move")
	}
}

func TestReenabledBodyKeepsCreationOrder(t *testing.T) {
	w := NewWorld(800, 1000)
	players := w.NewGroup(GroupConfig{Kind: "dude", W: 32, H: 48})
	stars := w.NewGroup(GroupConfig{Kind: "star", W: 24, H: 22})
	w.Overlap(players, stars, "collect")

	players.Create(400, 500)
	first := stars.Create(400, 500)
	second := stars.Create(405, 500)

	first.Disable(true)
	if events := w.Step(step); len(events) != 1 || events[0].B != second {
		t.Fatalf("expected only the second star, got %+v", events)
	}

	first.Enable(400, 500)
	events := w.Step(step)
	if len(events) != 2 || events[0].B != first || events[1].B != second {
		t.Fatalf("re-enabled star should be reported in creation order, got %+v", events)
	}
	if stars.CountEnabled() != 2 {
		t.Errorf("CountEnabled = %d, expected 2", stars.CountEnabled())
	}
}

func TestCollideBetweenMovableBodies(t *testing.T) {
	w := NewWorld(800, 1000)
	bullets := w.NewGroup(GroupConfig{Kind: "bullet", W: 8, H: 16})
	enemies := w.NewGroup(GroupConfig{Kind: "enemy", W: 14, H: 14, Bounce: 1})
	w.Collide(bullets, enemies, "hit")

	bullet := bullets.Create(100, 120)
	bullet.VY = -400
	enemy := enemies.Create(100, 100)
	enemy.VY = 150

	events := w.Step(step)

	if len(events) != 1 || events[0].A != bullet || events[0].B != enemy {
		t.Fatalf("expected one bullet/enemy event, got %+v", events)
	}
	if bullet.Top() < enemy.Bottom()-1e-9 {
		t.Errorf("bodies still overlap: bullet top %v, enemy bottom %v", bullet.Top(), enemy.Bottom())
	}
}

func TestRelationString(t *testing.T) {
	if RelationCollide.String() != "collide" || RelationOverlap.String() != "overlap" {
		t.Error("unexpected relation names")
	}
}
