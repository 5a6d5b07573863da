// Package skyfall implements the Skyfall round controller: a platformer in
// which the player rides terrain that keeps falling out of the sky, collects
// stars, coins and speed boosts, and shoots the enemies drifting down with it.
//
// The controller owns one round at a time and only configures and queries the
// arcade primitives; hosts supply input frames and draw the result.
package skyfall

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/skyfall/internal/arcade"
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "skyfall"

// Game implements the Skyfall round controller.
type Game struct {
	cfg        config.SkyfallConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *arcade.Rand
	logger     *log.Logger
	newID      func() string

	round  *round
	gen    int // Number of rounds started since the last Reset
	paused bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for round lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRoundIDs replaces the round ID generator.
func WithRoundIDs(next func() string) Option {
	return func(g *Game) {
		if next != nil {
			g.newID = next
		}
	}
}

// New creates a controller for the given round configuration.
// The first round is built by Reset.
func New(cfg config.SkyfallConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.New(io.Discard),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyfall"
}

// Config returns the round configuration the controller was built with.
func (g *Game) Config() config.SkyfallConfig {
	return g.cfg
}

// Reset discards any round in progress and starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = arcade.NewRand(cfg.Seed)
	g.gen = 0
	g.paused = false
	g.startRound()
}

func (g *Game) startRound() {
	g.gen++
	g.round = newRound(g.cfg, g.rng, g.newID(), g.gen)
	g.logger.Debug("round started", "round", g.gen, "id", g.round.id)
}

// endRound tears the current round down and builds the next one from scratch.
func (g *Game) endRound(cause core.EndCause) *core.RoundSummary {
	r := g.round
	summary := &core.RoundSummary{
		RoundID:           r.id,
		Score:             r.score,
		Cause:             cause,
		Ticks:             r.ticks,
		StarsCollected:    r.starsCollected,
		CoinsCollected:    r.coinsCollected,
		PowerUpsCollected: r.powerUpsCollected,
		EnemiesDestroyed:  r.enemiesDestroyed,
		ShotsFired:        r.shotsFired,
	}
	g.logger.Info("round ended", "id", r.id, "cause", cause, "score", r.score, "ticks", r.ticks)

	g.paused = false
	g.startRound()
	return summary
}

// Step advances the round by one tick.
//
// Within a tick the key-press handlers run first, then expired timers, then
// the physics step with its contact handlers in registration order, and last
// the per-frame update. A round that ends part way through returns at once;
// the rest of that tick's records belonged to the old round and are dropped.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) {
		return g.result(g.endRound(core.EndCauseRestart))
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(nil)
	}

	r := g.round
	r.ticks++
	dt := g.runtime.Elapsed(r.ticks) - g.runtime.Elapsed(r.ticks-1)

	if in.Has(core.ActionFire) {
		g.fire(r)
	}

	for _, f := range r.clock.Advance(dt) {
		g.onTimer(r, f)
	}

	for _, ev := range r.world.Step(dt.Seconds()) {
		if ended := g.onContact(r, ev); ended != nil {
			return g.result(ended)
		}
	}

	return g.result(g.update(r, in))
}

func (g *Game) result(ended *core.RoundSummary) core.StepResult {
	return core.StepResult{State: g.State(), RoundEnded: ended}
}

// update is the per-frame rule set: held input drives the player and a player
// outside the vertical world bounds ends the round.
func (g *Game) update(r *round, in core.InputFrame) *core.RoundSummary {
	speed := g.cfg.Physics.Speed * r.multiplier

	switch {
	case isDown(in, core.ActionLeft):
		r.dude.VX = -speed
		r.facing = FacingLeft
	case isDown(in, core.ActionRight):
		r.dude.VX = speed
		r.facing = FacingRight
	default:
		r.dude.VX = 0
		r.facing = FacingIdle
	}

	if isDown(in, core.ActionUp) && r.dude.Touching.Down {
		r.dude.VY = g.cfg.JumpVelocity()
	}

	if r.dude.Y > g.cfg.World.Height || r.dude.Y < 0 {
		return g.endRound(core.EndCauseOutOfWorld)
	}
	return nil
}

// isDown treats a press reported this tick as held, so hosts that only see
// key presses still move the player on that tick.
func isDown(in core.InputFrame, a core.Action) bool {
	return in.Held(a) || in.Has(a)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.round.score,
		Paused: g.paused,
		Round:  g.gen,
	}
}

// Multiplier returns the player's current speed multiplier.
func (g *Game) Multiplier() float64 {
	if g.round == nil {
		return 1
	}
	return g.round.multiplier
}

// RoundID returns the identifier of the round in progress.
func (g *Game) RoundID() string {
	if g.round == nil {
		return ""
	}
	return g.round.id
}
