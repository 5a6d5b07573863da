package skyfall

import (
	"github.com/vovakirdan/skyfall/internal/arcade"
	"github.com/vovakirdan/skyfall/internal/core"
)

// onTimer handles one expired timer. Records from a round that has already
// been replaced are ignored.
func (g *Game) onTimer(r *round, f arcade.Fired) {
	if r != g.round {
		return
	}
	switch f.Key {
	case timerSpawn:
		g.spawnTerrain(r)
	case timerRevert:
		g.revertBoost(r, f.ID)
	}
}

// spawnTerrain drops a new ground tile from the top of the world and sets all
// terrain drifting down, which reads as the player climbing. Every other tick
// on average a star falls with it.
func (g *Game) spawnTerrain(r *round) {
	width := int(g.cfg.World.Width)
	speed := g.difficulty.Speed(g.cfg.Physics.Speed, r.score, r.ticks)

	r.ground.Create(float64(g.rng.Between(0, width)), 0)
	r.ground.SetVelocityY(speed / g.cfg.Spawn.GroundDivisor)

	star := g.rng.Between(0, g.cfg.Spawn.StarRollMax) != 0
	if star {
		r.stars.Create(float64(g.rng.Between(0, width)), 0)
		r.stars.SetVelocityY(speed * g.cfg.Spawn.StarSpeedRatio)
	}
	g.logger.Debug("adding new stuff", "ground", r.ground.Len(), "star", star)
}

// onContact handles one contact from the physics step. A body disabled by an
// earlier contact in the same step takes part in no further contacts.
func (g *Game) onContact(r *round, ev arcade.Event) *core.RoundSummary {
	if r != g.round || !ev.A.Active || !ev.B.Active {
		return nil
	}

	switch ev.Key {
	case contactStar:
		ev.B.Disable(true)
		r.score += g.cfg.Scoring.Star
		r.starsCollected++
	case contactCoin:
		ev.B.Disable(true)
		r.score += g.cfg.Scoring.Coin
		r.coinsCollected++
	case contactPowerUp:
		ev.B.Disable(true)
		r.powerUpsCollected++
		g.boost(r)
	case contactEnemy:
		return g.endRound(core.EndCauseEnemy)
	case contactBullet:
		ev.A.Disable(true)
		ev.B.Disable(true)
		r.score += g.cfg.Scoring.Enemy
		r.enemiesDestroyed++
	}
	return nil
}

// boost applies a speed power-up and schedules its revert. The factor is
// stored with the timer so each revert undoes exactly its own activation.
func (g *Game) boost(r *round) {
	factor := g.cfg.PowerUp.Multiplier
	r.multiplier *= factor
	r.dude.VX *= factor

	id := r.clock.After(g.cfg.PowerUpDuration(), timerRevert)
	r.boosts[id] = factor
	g.logger.Debug("speed boost", "multiplier", r.multiplier, "active", len(r.boosts))
}

func (g *Game) revertBoost(r *round, id arcade.TimerID) {
	factor, ok := r.boosts[id]
	if !ok {
		return
	}
	delete(r.boosts, id)
	r.multiplier /= factor
	r.dude.VX /= factor
}

// fire launches one bullet from the player. An exhausted pool is a silent
// no-op.
func (g *Game) fire(r *round) {
	b := r.bullets.Get(r.dude.X, r.dude.Y)
	if b == nil {
		return
	}
	b.SetVelocity(0, -g.cfg.Bullets.Speed)
	b.AllowGravity = false
	b.OutOfBoundsKill = true
	r.shotsFired++
}
