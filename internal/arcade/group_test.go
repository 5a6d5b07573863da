package arcade

import "testing"

func TestCreateRowSpacing(t *testing.T) {
	w := NewWorld(800, 1000)
	g := w.NewGroup(GroupConfig{Kind: "enemy", W: 14, H: 14, VelocityY: 150, Bounce: 1})

	bodies := g.CreateRow(5, 12, 0, 150)

	if len(bodies) != 5 {
		t.Fatalf("expected 5 bodies, got %d", len(bodies))
	}
	for i, b := range bodies {
		wantX := 12 + 150*float64(i)
		if b.X != wantX || b.Y != 0 {
			t.Errorf("body %d at (%v, %v), expected (%v, 0)", i, b.X, b.Y, wantX)
		}
		if b.VY != 150 || b.Bounce != 1 {
			t.Errorf("body %d did not inherit group defaults", i)
		}
		if b.Kind() != "enemy" {
			t.Errorf("body %d kind = %q", i, b.Kind())
		}
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	w := NewWorld(800, 1000)
	a := w.NewGroup(GroupConfig{Kind: "a"})
	b := w.NewGroup(GroupConfig{Kind: "b"})

	seen := make(map[int]bool)
	for _, body := range append(a.CreateRow(3, 0, 0, 1), b.CreateRow(3, 0, 0, 1)...) {
		if seen[body.ID] {
			t.Fatalf("duplicate body id %d", body.ID)
		}
		seen[body.ID] = true
	}
}

func TestPoolGetRespectsMaxSize(t *testing.T) {
	w := NewWorld(800, 1000)
	pool := w.NewGroup(GroupConfig{Kind: "bullet", W: 8, H: 16, MaxSize: 3})

	for i := 0; i < 3; i++ {
		if pool.Get(10, 10) == nil {
			t.Fatalf("Get %d should succeed", i)
		}
	}
	if !pool.Full() {
		t.Error("pool should be full after 3 gets")
	}
	if b := pool.Get(10, 10); b != nil {
		t.Error("Get on an exhausted pool should return nil")
	}
	if pool.Len() != 3 || pool.CountActive() != 3 {
		t.Errorf("Len=%d CountActive=%d, expected 3 and 3", pool.Len(), pool.CountActive())
	}
}

func TestPoolGetRecyclesInactive(t *testing.T) {
	w := NewWorld(800, 1000)
	pool := w.NewGroup(GroupConfig{Kind: "bullet", MaxSize: 2})

	first := pool.Get(1, 1)
	pool.Get(2, 2)
	first.Disable(true)

	again := pool.Get(50, 60)
	if again != first {
		t.Fatal("Get should reuse the inactive slot")
	}
	if !again.Active || !again.Visible || !again.Enabled {
		t.Error("recycled body should be active and visible")
	}
	if again.X != 50 || again.Y != 60 {
		t.Errorf("recycled body at (%v, %v), expected (50, 60)", again.X, again.Y)
	}
	if pool.Len() != 2 {
		t.Errorf("recycling should not grow the pool, Len=%d", pool.Len())
	}
}

func TestUnlimitedGroupNeverFull(t *testing.T) {
	w := NewWorld(800, 1000)
	g := w.NewGroup(GroupConfig{Kind: "ground"})

	g.CreateRow(50, 0, 0, 10)

	if g.Full() {
		t.Error("group without MaxSize should never be full")
	}
}

func TestSetVelocityY(t *testing.T) {
	w := NewWorld(800, 1000)
	g := w.NewGroup(GroupConfig{Kind: "ground", Immovable: true})
	g.CreateRow(4, 0, 0, 100)

	g.SetVelocityY(50)

	for _, b := range g.Bodies() {
		if b.VY != 50 {
			t.Errorf("body %d VY = %v, expected 50", b.ID, b.VY)
		}
	}
	if g.First() != g.Bodies()[0] {
		t.Error("First should return the first member")
	}
}

func TestDisableClearsMotion(t *testing.T) {
	w := NewWorld(800, 1000)
	b := w.NewGroup(GroupConfig{Kind: "star"}).Create(0, 0)
	b.SetVelocity(10, 20)
	b.Touching.Down = true

	b.Disable(false)

	if b.Active || b.Enabled {
		t.Error("Disable should deactivate the body")
	}
	if !b.Visible {
		t.Error("Disable(false) should leave the body visible")
	}
	if b.VX != 0 || b.VY != 0 || !b.Touching.None() {
		t.Error("Disable should clear velocity and contacts")
	}
}
