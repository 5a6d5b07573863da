// Package arcade provides the small set of 2D engine primitives a game round
// is built from: rectangular bodies grouped by kind, pairwise collide/overlap
// registrations, a simulated clock with repeating and one-shot timers, and a
// seeded random source.
//
// Nothing here calls back into game code. World.Step and Clock.Advance return
// ordered event records and the caller decides what they mean, all on the
// caller's goroutine.
package arcade

import "math"

// Relation is the kind of pairwise registration between two groups.
type Relation int

const (
	// RelationCollide separates overlapping bodies and affects their motion.
	RelationCollide Relation = iota
	// RelationOverlap only reports contact.
	RelationOverlap
)

// String returns the relation name.
func (r Relation) String() string {
	switch r {
	case RelationCollide:
		return "collide"
	case RelationOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// Event is one contact found during World.Step. A belongs to the first group
// of the registration and B to the second.
type Event struct {
	Relation Relation
	Key      string
	A, B     *Body
}

type registration struct {
	relation Relation
	a, b     *Group
	key      string
}

// World owns every group and the registrations between them.
type World struct {
	Width, Height float64

	groups []*Group
	pairs  []registration
	nextID int
}

// NewWorld creates an empty world with the given bounds.
func NewWorld(width, height float64) *World {
	return &World{Width: width, Height: height}
}

// NewGroup creates a group owned by this world.
func (w *World) NewGroup(cfg GroupConfig) *Group {
	g := &Group{cfg: cfg, world: w}
	w.groups = append(w.groups, g)
	return g
}

// Collide registers a solid relationship between two groups. Overlapping
// bodies are pushed apart; a non-empty key also reports an Event.
func (w *World) Collide(a, b *Group, key string) {
	w.pairs = append(w.pairs, registration{relation: RelationCollide, a: a, b: b, key: key})
}

// Overlap registers a contact-only relationship between two groups.
func (w *World) Overlap(a, b *Group, key string) {
	w.pairs = append(w.pairs, registration{relation: RelationOverlap, a: a, b: b, key: key})
}

// Step advances every enabled body by dt seconds and resolves registrations
// in the order they were added. Contacts with a key are returned in the order
// they were found. Disabled bodies cost nothing here.
func (w *World) Step(dt float64) []Event {
	for _, g := range w.groups {
		for _, b := range g.live() {
			if !b.Enabled {
				continue
			}
			w.integrate(b, dt)
		}
	}

	var events []Event
	for _, p := range w.pairs {
		as, bs := p.a.live(), p.b.live()
		for _, a := range as {
			for _, b := range bs {
				if a == b || !a.Enabled || !b.Enabled || !a.Overlaps(b) {
					continue
				}
				if p.relation == RelationCollide {
					separate(a, b)
				}
				if p.key != "" {
					events = append(events, Event{Relation: p.relation, Key: p.key, A: a, B: b})
				}
			}
		}
	}
	return events
}

func (w *World) integrate(b *Body, dt float64) {
	b.Touching = Touching{}
	b.prevX, b.prevY = b.X, b.Y

	if b.AllowGravity {
		b.VY += b.GravityY * dt
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.CollideWorldBounds {
		w.clampToBounds(b)
	}
	if b.OutOfBoundsKill && w.outside(b) {
		b.Disable(true)
	}
	if b.KillBelow && b.VY >= 0 && b.Top() >= w.Height {
		b.Disable(true)
	}
}

func (w *World) clampToBounds(b *Body) {
	if b.Left() < 0 {
		b.X = b.W / 2
		b.VX = math.Abs(b.VX) * b.Bounce
	} else if b.Right() > w.Width {
		b.X = w.Width - b.W/2
		b.VX = -math.Abs(b.VX) * b.Bounce
	}
	if b.Top() < 0 {
		b.Y = b.H / 2
		b.VY = math.Abs(b.VY) * b.Bounce
	} else if b.Bottom() > w.Height {
		b.Y = w.Height - b.H/2
		b.VY = -math.Abs(b.VY) * b.Bounce
	}
}

// outside reports whether the body lies entirely outside the world.
func (w *World) outside(b *Body) bool {
	return b.Right() <= 0 || b.Left() >= w.Width || b.Bottom() <= 0 || b.Top() >= w.Height
}

// separate pushes two overlapping bodies apart along one axis. The axis is
// the one on which the boxes were still apart before this step; bodies that
// already overlapped are split along the axis of least penetration.
func separate(a, b *Body) {
	if a.Immovable && b.Immovable {
		return
	}

	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Top(), b.Top())

	wasApartY := a.prevY+a.H/2 <= b.prevY-b.H/2 || b.prevY+b.H/2 <= a.prevY-a.H/2
	wasApartX := a.prevX+a.W/2 <= b.prevX-b.W/2 || b.prevX+b.W/2 <= a.prevX-a.W/2

	switch {
	case wasApartY:
		separateY(a, b, overlapY)
	case wasApartX:
		separateX(a, b, overlapX)
	case overlapY <= overlapX:
		separateY(a, b, overlapY)
	default:
		separateX(a, b, overlapX)
	}
}

func separateY(a, b *Body, overlap float64) {
	top, bottom := a, b
	if a.Y > b.Y {
		top, bottom = b, a
	}
	top.Touching.Down = true
	bottom.Touching.Up = true

	shareTop, shareBottom := shares(top, bottom)
	top.Y -= overlap * shareTop
	bottom.Y += overlap * shareBottom

	// Only exchange momentum when the bodies are still closing in.
	if top.VY-bottom.VY <= 0 {
		return
	}
	top.VY, bottom.VY = exchange(top.VY, bottom.VY, top, bottom)
}

func separateX(a, b *Body, overlap float64) {
	left, right := a, b
	if a.X > b.X {
		left, right = b, a
	}
	left.Touching.Right = true
	right.Touching.Left = true

	shareLeft, shareRight := shares(left, right)
	left.X -= overlap * shareLeft
	right.X += overlap * shareRight

	if left.VX-right.VX <= 0 {
		return
	}
	left.VX, right.VX = exchange(left.VX, right.VX, left, right)
}

// shares returns how much of the correction each body takes.
func shares(a, b *Body) (float64, float64) {
	switch {
	case a.Immovable:
		return 0, 1
	case b.Immovable:
		return 1, 0
	default:
		return 0.5, 0.5
	}
}

// exchange returns the post-contact velocities of a and b along one axis.
// A movable body hitting an immovable one keeps the immovable body's speed
// plus its own rebound; two movable bodies meet at their mean speed.
func exchange(va, vb float64, a, b *Body) (float64, float64) {
	switch {
	case b.Immovable:
		return vb - (va-vb)*a.Bounce, vb
	case a.Immovable:
		return va, va - (vb-va)*b.Bounce
	default:
		mean := (va + vb) / 2
		return mean - (va-mean)*a.Bounce, mean - (vb-mean)*b.Bounce
	}
}
