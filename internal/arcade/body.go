package arcade

// Touching records which sides of a body were in solid contact during the
// last World.Step.
type Touching struct {
	Up, Down, Left, Right bool
}

// None reports whether no side is touching.
func (t Touching) None() bool {
	return !t.Up && !t.Down && !t.Left && !t.Right
}

// Body is a rectangular physics body. X and Y are the centre of the box,
// matching how sprites are positioned in the world.
type Body struct {
	ID    int
	Group *Group

	X, Y   float64
	W, H   float64
	VX, VY float64

	// GravityY is added to VY every second while AllowGravity is set.
	GravityY     float64
	AllowGravity bool

	// Immovable bodies are never pushed by a collider.
	Immovable bool

	// Bounce is the fraction of approach speed kept after a collision
	// (0 = stop, 1 = perfect bounce).
	Bounce float64

	CollideWorldBounds bool
	OutOfBoundsKill    bool
	// KillBelow disables the body once it has sunk below the world and is
	// not moving back up.
	KillBelow bool

	Active  bool
	Visible bool
	Enabled bool

	Touching Touching

	prevX, prevY float64
}

// Left returns the x-coordinate of the left edge.
func (b *Body) Left() float64 { return b.X - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 { return b.X + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b *Body) Top() float64 { return b.Y - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 { return b.Y + b.H/2 }

// Overlaps reports whether two bodies' boxes intersect.
// Boxes that only share an edge do not overlap.
func (b *Body) Overlaps(o *Body) bool {
	if b.Left() >= o.Right() || o.Left() >= b.Right() {
		return false
	}
	if b.Top() >= o.Bottom() || o.Top() >= b.Bottom() {
		return false
	}
	return true
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// Disable removes the body from the simulation and, when hide is set, from
// rendering as well. The body keeps its slot in its group so it can be
// recycled by Group.Get.
func (b *Body) Disable(hide bool) {
	b.changed()
	b.Enabled = false
	b.Active = false
	if hide {
		b.Visible = false
	}
	b.VX, b.VY = 0, 0
	b.Touching = Touching{}
}

// Enable puts a body back into the simulation at the given position.
func (b *Body) Enable(x, y float64) {
	b.changed()
	b.X, b.Y = x, y
	b.prevX, b.prevY = x, y
	b.Enabled = true
	b.Active = true
	b.Visible = true
	b.Touching = Touching{}
}

// changed marks the owning group's enabled list for a rebuild.
func (b *Body) changed() {
	if b.Group != nil {
		b.Group.stale = true
	}
}

// Kind returns the kind of the owning group.
func (b *Body) Kind() string {
	if b.Group == nil {
		return ""
	}
	return b.Group.Kind()
}
