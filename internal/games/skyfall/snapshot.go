package skyfall

import (
	"github.com/vovakirdan/skyfall/internal/arcade"
	"github.com/vovakirdan/skyfall/internal/core"
)

// Sprite is one visible body in world coordinates (centre and size).
type Sprite struct {
	Kind  string
	X, Y  float64
	W, H  float64
	Color core.Color
}

// Snapshot is the drawable state of the round in progress.
// Hosts that draw in world space (the window host) use it instead of Render.
type Snapshot struct {
	RoundID string
	Round   int
	Tick    int
	Score   int
	Paused  bool

	WorldW, WorldH float64

	Facing     Facing
	Grounded   bool
	Multiplier float64
	PlayerX    float64
	PlayerY    float64
	PlayerVX   float64
	PlayerVY   float64

	BulletsFree int
	BulletsCap  int

	// Sprites are in draw order: terrain first, player last.
	Sprites []Sprite
}

// Snapshot returns the current round as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.round
	if r == nil {
		return Snapshot{}
	}

	s := Snapshot{
		RoundID:     r.id,
		Round:       g.gen,
		Tick:        r.ticks,
		Score:       r.score,
		Paused:      g.paused,
		WorldW:      g.cfg.World.Width,
		WorldH:      g.cfg.World.Height,
		Facing:      r.facing,
		Grounded:    r.dude.Touching.Down,
		Multiplier:  r.multiplier,
		PlayerX:     r.dude.X,
		PlayerY:     r.dude.Y,
		PlayerVX:    r.dude.VX,
		PlayerVY:    r.dude.VY,
		BulletsFree: g.cfg.Bullets.PoolSize - r.bullets.CountActive(),
		BulletsCap:  g.cfg.Bullets.PoolSize,
	}

	palette := g.palette()
	for _, grp := range r.drawOrder() {
		for _, b := range grp.Bodies() {
			if !b.Visible {
				continue
			}
			s.Sprites = append(s.Sprites, Sprite{
				Kind: b.Kind(), X: b.X, Y: b.Y, W: b.W, H: b.H,
				Color: palette[b.Kind()],
			})
		}
	}
	return s
}

func (r *round) drawOrder() []*arcade.Group {
	return []*arcade.Group{r.ground, r.stars, r.coins, r.powerUps, r.enemies, r.bullets, r.players}
}
