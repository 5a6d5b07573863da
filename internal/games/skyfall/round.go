package skyfall

import (
	"github.com/vovakirdan/skyfall/internal/arcade"
	"github.com/vovakirdan/skyfall/internal/config"
)

// Group kinds, also used as sprite names by hosts.
const (
	KindDude    = "dude"
	KindGround  = "ground"
	KindStar    = "star"
	KindEnemy   = "enemy"
	KindCoin    = "coin"
	KindPowerUp = "powerup"
	KindBullet  = "bullet"
)

// Contact keys reported by the world.
const (
	contactStar    = "collect-star"
	contactCoin    = "collect-coin"
	contactPowerUp = "collect-powerup"
	contactEnemy   = "hit-enemy"
	contactBullet  = "bullet-enemy"
)

// Timer keys reported by the clock.
const (
	timerSpawn  = "spawn"
	timerRevert = "powerup-revert"
)

// Facing is the player's animation state.
type Facing int

const (
	FacingIdle Facing = iota
	FacingLeft
	FacingRight
)

// String returns the animation name.
func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "turn"
	}
}

// round is everything that lives for exactly one round. Nothing in it is
// reused by the next round.
type round struct {
	id  string
	gen int

	world *arcade.World
	clock *arcade.Clock

	dude     *arcade.Body
	players  *arcade.Group
	ground   *arcade.Group
	stars    *arcade.Group
	enemies  *arcade.Group
	coins    *arcade.Group
	powerUps *arcade.Group
	bullets  *arcade.Group

	facing     Facing
	multiplier float64
	// boosts pairs each pending revert with the factor its activation applied.
	boosts     map[arcade.TimerID]float64
	spawnTimer arcade.TimerID

	score int
	ticks int

	starsCollected    int
	coinsCollected    int
	powerUpsCollected int
	enemiesDestroyed  int
	shotsFired        int
}

// newRound builds a fresh world: player, static terrain, the round-start
// batches, an empty bullet pool, every contact registration and the spawn
// timer.
func newRound(cfg config.SkyfallConfig, rng *arcade.Rand, id string, gen int) *round {
	w := arcade.NewWorld(cfg.World.Width, cfg.World.Height)
	sp := cfg.Sprites
	drift := cfg.DriftVelocity()

	r := &round{
		id:         id,
		gen:        gen,
		world:      w,
		clock:      arcade.NewClock(),
		multiplier: 1,
		boosts:     make(map[arcade.TimerID]float64),
	}

	r.ground = w.NewGroup(arcade.GroupConfig{
		Kind: KindGround, W: sp.Ground.Width, H: sp.Ground.Height,
		Immovable: true, KillBelow: true,
	})
	width, height := int(cfg.World.Width), int(cfg.World.Height)
	for i := 0; i < cfg.Spawn.InitialGround; i++ {
		r.ground.Create(float64(rng.Between(0, width)), float64(rng.Between(0, height)))
	}

	r.players = w.NewGroup(arcade.GroupConfig{
		Kind: KindDude, W: sp.Dude.Width, H: sp.Dude.Height,
		GravityY: cfg.Physics.Gravity, AllowGravity: true,
	})
	r.dude = r.players.Create(cfg.World.Width/2, cfg.World.Height/2)
	w.Collide(r.players, r.ground, "")

	r.stars = w.NewGroup(arcade.GroupConfig{
		Kind: KindStar, W: sp.Star.Width, H: sp.Star.Height, KillBelow: true,
	})
	w.Collide(r.stars, r.ground, "")
	w.Overlap(r.players, r.stars, contactStar)

	r.enemies = w.NewGroup(arcade.GroupConfig{
		Kind: KindEnemy, W: sp.Enemy.Width, H: sp.Enemy.Height,
		VelocityY: drift, Bounce: cfg.Batches.EnemyBounce, CollideWorldBounds: true,
	})
	createBatch(r.enemies, cfg.Batches.Enemies)
	w.Collide(r.enemies, r.ground, "")
	w.Overlap(r.players, r.enemies, contactEnemy)

	r.coins = w.NewGroup(arcade.GroupConfig{
		Kind: KindCoin, W: sp.Coin.Width, H: sp.Coin.Height, VelocityY: drift,
		KillBelow: true,
	})
	createBatch(r.coins, cfg.Batches.Coins)
	w.Collide(r.coins, r.ground, "")
	w.Overlap(r.players, r.coins, contactCoin)

	r.powerUps = w.NewGroup(arcade.GroupConfig{
		Kind: KindPowerUp, W: sp.PowerUp.Width, H: sp.PowerUp.Height, VelocityY: drift,
		KillBelow: true,
	})
	createBatch(r.powerUps, cfg.Batches.PowerUps)
	w.Collide(r.powerUps, r.ground, "")
	w.Overlap(r.players, r.powerUps, contactPowerUp)

	r.bullets = w.NewGroup(arcade.GroupConfig{
		Kind: KindBullet, W: sp.Bullet.Width, H: sp.Bullet.Height,
		OutOfBoundsKill: true, MaxSize: cfg.Bullets.PoolSize,
	})
	w.Collide(r.bullets, r.enemies, contactBullet)

	r.spawnTimer = r.clock.Every(cfg.SpawnPeriod(), timerSpawn)
	return r
}

func createBatch(g *arcade.Group, b config.Batch) {
	g.CreateRow(b.Count, b.X, b.Y, b.StepX)
}
