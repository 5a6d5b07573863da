package arcade

// GroupConfig holds the defaults applied to every body a group creates.
type GroupConfig struct {
	Kind string
	W, H float64

	VelocityY    float64
	GravityY     float64
	AllowGravity bool
	Immovable    bool
	Bounce       float64

	CollideWorldBounds bool
	OutOfBoundsKill    bool
	KillBelow          bool

	// MaxSize caps the number of members. Zero means unlimited.
	MaxSize int
}

// Group is an ordered collection of bodies sharing one configuration.
type Group struct {
	cfg    GroupConfig
	world  *World
	bodies []*Body

	// enabled holds the enabled members in creation order. It is rebuilt
	// after any member is enabled or disabled.
	enabled []*Body
	stale   bool
}

// Kind returns the group label.
func (g *Group) Kind() string {
	return g.cfg.Kind
}

// Config returns the group's body defaults.
func (g *Group) Config() GroupConfig {
	return g.cfg
}

// Create adds a new active body at (x, y).
// Returns nil when the group is already at MaxSize.
func (g *Group) Create(x, y float64) *Body {
	if g.Full() {
		return nil
	}

	g.world.nextID++
	b := &Body{
		ID:                 g.world.nextID,
		Group:              g,
		W:                  g.cfg.W,
		H:                  g.cfg.H,
		VY:                 g.cfg.VelocityY,
		GravityY:           g.cfg.GravityY,
		AllowGravity:       g.cfg.AllowGravity,
		Immovable:          g.cfg.Immovable,
		Bounce:             g.cfg.Bounce,
		CollideWorldBounds: g.cfg.CollideWorldBounds,
		OutOfBoundsKill:    g.cfg.OutOfBoundsKill,
		KillBelow:          g.cfg.KillBelow,
	}
	b.Enable(x, y)
	g.bodies = append(g.bodies, b)
	return b
}

// CreateRow creates count bodies starting at (x, y), stepping stepX apart.
func (g *Group) CreateRow(count int, x, y, stepX float64) []*Body {
	created := make([]*Body, 0, count)
	for i := 0; i < count; i++ {
		b := g.Create(x+float64(i)*stepX, y)
		if b == nil {
			break
		}
		created = append(created, b)
	}
	return created
}

// Get returns an inactive member moved to (x, y) and re-enabled, or a newly
// created body if every member is in use. Returns nil when the group is full
// and no member is free.
func (g *Group) Get(x, y float64) *Body {
	for _, b := range g.bodies {
		if !b.Active {
			b.Enable(x, y)
			return b
		}
	}
	return g.Create(x, y)
}

// Full reports whether the group has reached MaxSize.
func (g *Group) Full() bool {
	return g.cfg.MaxSize > 0 && len(g.bodies) >= g.cfg.MaxSize
}

// SetVelocityY sets the vertical velocity of every member.
func (g *Group) SetVelocityY(vy float64) {
	for _, b := range g.bodies {
		b.VY = vy
	}
}

// Bodies returns the members in creation order.
func (g *Group) Bodies() []*Body {
	return g.bodies
}

// Len returns the number of members, active or not.
func (g *Group) Len() int {
	return len(g.bodies)
}

// CountEnabled returns how many members take part in the simulation.
func (g *Group) CountEnabled() int {
	return len(g.live())
}

// live returns the enabled members in creation order.
func (g *Group) live() []*Body {
	if g.stale {
		g.enabled = g.enabled[:0]
		for _, b := range g.bodies {
			if b.Enabled {
				g.enabled = append(g.enabled, b)
			}
		}
		g.stale = false
	}
	return g.enabled
}

// CountActive returns how many members are active.
func (g *Group) CountActive() int {
	n := 0
	for _, b := range g.bodies {
		if b.Active {
			n++
		}
	}
	return n
}

// First returns the first member, or nil for an empty group.
func (g *Group) First() *Body {
	if len(g.bodies) == 0 {
		return nil
	}
	return g.bodies[0]
}
