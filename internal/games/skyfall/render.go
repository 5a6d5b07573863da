package skyfall

import (
	"fmt"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// Visual characters for rendering
const (
	GroundChar  = '▀'
	StarChar    = '*'
	EnemyChar   = 'W'
	CoinChar    = 'o'
	PowerUpChar = '+'
	BulletChar  = '|'
	DudeLeft    = '<'
	DudeRight   = '>'
	DudeIdle    = '@'
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Render draws the round into dst: a HUD line on top and the world below it,
// scaled to fit the terminal while keeping its proportions.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	r := g.round
	if r == nil {
		return
	}

	vp := g.viewport(dst.Width(), dst.Height())
	frame := core.NewRect(vp.Area.X-1, vp.Area.Y-1, vp.Area.W+2, vp.Area.H+2)
	dst.DrawBox(frame)

	palette := g.palette()
	for _, grp := range r.drawOrder() {
		for _, b := range grp.Bodies() {
			if !b.Visible {
				continue
			}
			glyph := glyphFor(b.Kind(), r.facing)
			cell := vp.Clip(vp.RectFor(b.X, b.Y, b.W, b.H))
			dst.DrawRectColor(cell, glyph, palette[b.Kind()])
		}
	}

	g.drawHUD(dst, r)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// viewport fits the world inside a one-cell border below the HUD line.
func (g *Game) viewport(screenW, screenH int) core.Viewport {
	areaH := max(screenH-3, 1)
	ratio := g.cfg.World.Width / g.cfg.World.Height
	areaW := int(float64(areaH) * ratio * cellAspect)
	areaW = core.Clamp(areaW, 1, max(screenW-2, 1))
	x := max((screenW-areaW)/2, 1)
	return core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, core.NewRect(x, 2, areaW, areaH))
}

func (g *Game) drawHUD(dst *core.Screen, r *round) {
	hud := fmt.Sprintf(" %c %d ", StarChar, r.score)
	dst.DrawTextColor(1, 0, hud, core.ColorBrightYellow)

	status := fmt.Sprintf("round %d  bullets %d/%d", g.gen,
		g.cfg.Bullets.PoolSize-r.bullets.CountActive(), g.cfg.Bullets.PoolSize)
	if r.multiplier != 1 {
		status += fmt.Sprintf("  speed x%.2g", r.multiplier)
	}
	dst.DrawText(len([]rune(hud))+2, 0, status)
}

func glyphFor(kind string, facing Facing) rune {
	switch kind {
	case KindGround:
		return GroundChar
	case KindStar:
		return StarChar
	case KindEnemy:
		return EnemyChar
	case KindCoin:
		return CoinChar
	case KindPowerUp:
		return PowerUpChar
	case KindBullet:
		return BulletChar
	}
	switch facing {
	case FacingLeft:
		return DudeLeft
	case FacingRight:
		return DudeRight
	default:
		return DudeIdle
	}
}

// palette resolves the configured sprite colours; unknown names draw in the
// terminal's default colour.
func (g *Game) palette() map[string]core.Color {
	sp := g.cfg.Sprites
	sprites := map[string]config.Sprite{
		KindDude:    sp.Dude,
		KindGround:  sp.Ground,
		KindStar:    sp.Star,
		KindEnemy:   sp.Enemy,
		KindCoin:    sp.Coin,
		KindPowerUp: sp.PowerUp,
		KindBullet:  sp.Bullet,
	}
	colors := make(map[string]core.Color, len(sprites))
	for kind, s := range sprites {
		c, _ := core.ParseColor(s.Color)
		colors[kind] = c
	}
	return colors
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─')
	dst.DrawTextCentered(boxY+3, subtitle)
}
